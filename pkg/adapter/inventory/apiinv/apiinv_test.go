package apiinv

import (
	"context"
	"errors"
	"testing"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	cars    []model.AdminCar
	queries []model.CarQuery
}

func (fl *fakeLister) ListCars(
	_ context.Context, q model.CarQuery,
) (*model.Page[model.AdminCar], error) {
	fl.queries = append(fl.queries, q)
	total := len(fl.cars)
	pages := (total + q.Limit - 1) / q.Limit
	start := min((q.Page-1)*q.Limit, total)
	end := min(start+q.Limit, total)
	return &model.Page[model.AdminCar]{
		Data:       fl.cars[start:end],
		Total:      total,
		Page:       q.Page,
		PageSize:   q.Limit,
		TotalPages: pages,
	}, nil
}

func (fl *fakeLister) Car(_ context.Context, id string) (*model.AdminCar, error) {
	for i := range fl.cars {
		if fl.cars[i].ID == id {
			c := fl.cars[i]
			return &c, nil
		}
	}
	return nil, cerr.NotFound(errors.New("Car not found"))
}

func adminCar(id string, status model.CarStatus) model.AdminCar {
	return model.AdminCar{
		ID:           id,
		Brand:        "Skoda",
		Model:        "Octavia",
		Year:         2022,
		Transmission: model.TransmissionAutomatic,
		FuelType:     model.FuelTypePetrol,
		PricePerDay:  1400,
		Status:       status,
		Features:     []string{"Bluetooth"},
		Rating:       4.2,
	}
}

func TestVehiclesWalksAllPages(t *testing.T) {
	fl := &fakeLister{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		fl.cars = append(fl.cars, adminCar(id, model.CarAvailable))
	}
	fl.cars[3].Status = model.CarMaintenance
	fl.cars[4].PricePerDay = 0 // not a valid vehicle

	inv := New(fl, 2)
	vs, err := inv.Vehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 4)
	assert.Len(t, fl.queries, 3)
	assert.Equal(t, "d", vs[3].ID)
	assert.False(t, vs[3].Available)
	assert.True(t, vs[0].Available)
	assert.Equal(t, model.DefaultSeats, vs[0].Seats)
}

func TestVehicleNotFound(t *testing.T) {
	fl := &fakeLister{cars: []model.AdminCar{adminCar("a", model.CarAvailable)}}
	inv := New(fl, 0)
	v, err := inv.Vehicle(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Skoda Octavia", v.Name())

	_, err = inv.Vehicle(context.Background(), "zz")
	assert.ErrorIs(t, err, repo.ErrVehicleNotFound)
}
