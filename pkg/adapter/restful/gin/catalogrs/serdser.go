package catalogrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/model"
)

type rawQueryReq struct {
	Search       string `form:"search"`
	Brand        string `form:"brand"`
	Transmission string `form:"transmission"`
	FuelType     string `form:"fuelType"`

	TransmissionTypes []string `form:"transmissionTypes"`
	FuelTypes         []string `form:"fuelTypes"`
	Features          []string `form:"features"`

	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	MinYear  *int     `form:"minYear" binding:"omitempty,gte=0"`
	MaxYear  *int     `form:"maxYear" binding:"omitempty,gte=0"`

	Sort    string `form:"sort"`
	View    string `form:"view"`
	Page    int    `form:"page" binding:"gte=0"`
	Compact bool   `form:"compact"`
}

func (rs *resource) DserQueryReq(c *gin.Context) *model.CatalogQuery {
	req := &rawQueryReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	q := &model.CatalogQuery{
		Search:  req.Search,
		Page:    req.Page,
		Compact: req.Compact,
	}
	fc := &q.Filters
	fc.Brand = req.Brand
	fc.Features = serdser.Split(req.Features)
	var err error
	fc.Transmission, err = model.ParseTransmission(req.Transmission)
	serdser.Assert(&errs, err == nil, "transmission", errMsg(err))
	fc.FuelType, err = model.ParseFuelType(req.FuelType)
	serdser.Assert(&errs, err == nil, "fuelType", errMsg(err))
	for _, s := range serdser.Split(req.TransmissionTypes) {
		t, err := model.ParseTransmission(s)
		if serdser.Assert(&errs, err == nil, "transmissionTypes", errMsg(err)) {
			fc.TransmissionTypes = append(fc.TransmissionTypes, t)
		}
	}
	for _, s := range serdser.Split(req.FuelTypes) {
		f, err := model.ParseFuelType(s)
		if serdser.Assert(&errs, err == nil, "fuelTypes", errMsg(err)) {
			fc.FuelTypes = append(fc.FuelTypes, f)
		}
	}
	fc.MinPrice, fc.MaxPrice = ordered(req.MinPrice, req.MaxPrice)
	fc.MinYear, fc.MaxYear = ordered(req.MinYear, req.MaxYear)
	q.Sort, err = model.ParseSortKey(req.Sort)
	serdser.Assert(&errs, err == nil, "sort", errMsg(err))
	q.ViewMode, err = model.ParseViewMode(req.View)
	serdser.Assert(&errs, err == nil, "view", errMsg(err))
	if errs == nil {
		return q
	}
	return nil
}

// ordered swaps the lo and hi bounds if both are given and lo > hi.
func ordered[T int | float64](lo, hi *T) (*T, *T) {
	if lo != nil && hi != nil && *lo > *hi {
		return hi, lo
	}
	return lo, hi
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
