package carsrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gVehicle struct {
	ID  string `gorm:"primaryKey;column:id"`
	Seq int64  `gorm:"autoIncrement;index;column:seq"`

	Brand        string
	Model        string
	Year         int
	Seats        int
	Transmission string
	FuelType     string
	PricePerDay  float64
	Available    bool
	ImageURL     string   `gorm:"column:image_url"`
	Images       []string `gorm:"serializer:json;column:additional_images"`
	Features     []string `gorm:"serializer:json"`
	Rating       float64
	Description  string
}

func (gv *gVehicle) TableName() string {
	return "vehicles"
}

// upsertColumns lists all columns but id and seq, so an updated vehicle
// keeps its inventory position.
var upsertColumns = []string{
	"brand", "model", "year", "seats", "transmission", "fuel_type",
	"price_per_day", "available", "image_url", "additional_images",
	"features", "rating", "description",
}

func (gv *gVehicle) toModel() (*model.Vehicle, error) {
	t, err := model.ParseTransmission(gv.Transmission)
	if err != nil {
		return nil, fmt.Errorf("vehicle %q: %w", gv.ID, err)
	}
	f, err := model.ParseFuelType(gv.FuelType)
	if err != nil {
		return nil, fmt.Errorf("vehicle %q: %w", gv.ID, err)
	}
	return &model.Vehicle{
		ID:               gv.ID,
		Brand:            gv.Brand,
		Model:            gv.Model,
		Year:             gv.Year,
		Seats:            gv.Seats,
		Transmission:     t,
		FuelType:         f,
		PricePerDay:      gv.PricePerDay,
		Available:        gv.Available,
		ImageURL:         gv.ImageURL,
		AdditionalImages: gv.Images,
		Features:         gv.Features,
		Rating:           gv.Rating,
		Description:      gv.Description,
	}, nil
}

func fromModel(v *model.Vehicle) *gVehicle {
	return &gVehicle{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Seats:        v.Seats,
		Transmission: v.Transmission.String(),
		FuelType:     v.FuelType.String(),
		PricePerDay:  v.PricePerDay,
		Available:    v.Available,
		ImageURL:     v.ImageURL,
		Images:       v.AdditionalImages,
		Features:     v.Features,
		Rating:       v.Rating,
		Description:  v.Description,
	}
}

func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return postgres.AutoMigrate(ctx, q, &gVehicle{})
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Vehicle, error) {
	var gvs []gVehicle
	if err := q.GORM(ctx).Order("seq").Find(&gvs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	vs := make([]model.Vehicle, 0, len(gvs))
	for i := range gvs {
		v, err := gvs[i].toModel()
		if err != nil {
			return nil, err
		}
		vs = append(vs, *v)
	}
	return vs, nil
}

func ByID[Q postgres.Queryer](ctx context.Context, q Q, id string) (*model.Vehicle, error) {
	gv := &gVehicle{}
	err := q.GORM(ctx).Where("id=?", id).Take(gv).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("%w: %q", repo.ErrVehicleNotFound, id)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gv.toModel()
}

func Upsert[Q postgres.Queryer](ctx context.Context, q Q, v *model.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	err := q.GORM(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(fromModel(v)).Error
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id string) (bool, error) {
	n, err := q.Exec(ctx, "DELETE FROM vehicles WHERE id=$1", id)
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored vehicles.
func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.Count(ctx, q, "vehicles")
}

// Lock takes an exclusive lock on the vehicles table until the end
// of the current transaction. Concurrent seeding transactions wait for
// each other, so their upserts do not interleave.
func Lock(ctx context.Context, tx *postgres.Tx) error {
	_, err := tx.Exec(ctx, "LOCK TABLE vehicles IN SHARE ROW EXCLUSIVE MODE")
	if err != nil {
		return fmt.Errorf("locking vehicles: %w", err)
	}
	return nil
}
