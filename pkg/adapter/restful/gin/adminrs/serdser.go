package adminrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/autorent/pkg/core/model"
)

func (rs *resource) DserCredentialsReq(c *gin.Context) *model.Credentials {
	req := &model.Credentials{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

type pageReq struct {
	Page  int    `form:"page" binding:"gte=0"`
	Limit int    `form:"limit" binding:"gte=0,lte=100"`
	Sort  string `form:"sort"`
}

type carQueryReq struct {
	pageReq
	Brand  string `form:"brand"`
	Status string `form:"status" binding:"omitempty,oneof=available unavailable maintenance"`
}

func (rs *resource) DserCarQueryReq(c *gin.Context) *model.CarQuery {
	req := &carQueryReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return &model.CarQuery{
		Page:   req.Page,
		Limit:  req.Limit,
		Sort:   req.Sort,
		Brand:  req.Brand,
		Status: model.CarStatus(req.Status),
	}
}

type bookingQueryReq struct {
	pageReq
	Status string `form:"status" binding:"omitempty,oneof=pending active completed canceled"`
}

func (rs *resource) DserBookingQueryReq(c *gin.Context) *model.BookingQuery {
	req := &bookingQueryReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return &model.BookingQuery{
		Page:   req.Page,
		Limit:  req.Limit,
		Sort:   req.Sort,
		Status: model.BookingStatus(req.Status),
	}
}

type limitReq struct {
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

func (rs *resource) DserLimitReq(c *gin.Context) (int, bool) {
	req := &limitReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return 0, false
	}
	return req.Limit, true
}

// Car and booking forms are validated by the use case, so they are
// only decoded here.

func (rs *resource) DserCarReq(c *gin.Context) *model.AdminCar {
	req := &model.AdminCar{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserCarPatchReq(c *gin.Context) *model.CarPatch {
	req := &model.CarPatch{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserBookingReq(c *gin.Context) *model.Booking {
	req := &model.Booking{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}

func (rs *resource) DserBookingPatchReq(c *gin.Context) *model.BookingPatch {
	req := &model.BookingPatch{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req
}
