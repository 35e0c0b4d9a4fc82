// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	tr, err := model.ParseTransmission(" Manual ")
	require.NoError(t, err)
	assert.Equal(t, model.TransmissionManual, tr)
	tr, err = model.ParseTransmission("")
	require.NoError(t, err)
	assert.Equal(t, model.TransmissionUnset, tr)
	_, err = model.ParseTransmission("tiptronic")
	assert.ErrorIs(t, err, model.ErrUnknownTransmission)

	f, err := model.ParseFuelType("ELECTRIC")
	require.NoError(t, err)
	assert.Equal(t, "electric", f.String())

	sk, err := model.ParseSortKey("name-asc")
	require.NoError(t, err)
	assert.Equal(t, model.SortNameAsc, sk)
	_, err = model.ParseSortKey("cheapest")
	assert.ErrorIs(t, err, model.ErrUnknownSortKey)
	assert.Error(t, model.SortKey(42).Validate())

	vm, err := model.ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, model.ViewGrid, vm)
	_, err = model.ParseViewMode("table")
	assert.ErrorIs(t, err, model.ErrUnknownViewMode)
}

func TestVehicleJSON(t *testing.T) {
	v := model.Vehicle{
		ID: "7", Brand: "Skoda", Model: "Octavia",
		Transmission: model.TransmissionRobotized,
		FuelType:     model.FuelTypeDiesel,
		PricePerDay:  1800,
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"transmission":"robotized"`)
	assert.Contains(t, string(b), `"fuelType":"diesel"`)

	var got model.Vehicle
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Skoda Octavia", got.Name())

	err = json.Unmarshal([]byte(`{"transmission":"steam"}`), &got)
	assert.Error(t, err)
}

func TestVehicleValidate(t *testing.T) {
	valid := model.Vehicle{
		ID:           "1",
		Transmission: model.TransmissionAutomatic,
		FuelType:     model.FuelTypePetrol,
		PricePerDay:  100,
		Rating:       4.5,
	}
	require.NoError(t, valid.Validate())
	for name, mutate := range map[string]func(v *model.Vehicle){
		"no id":           func(v *model.Vehicle) { v.ID = "" },
		"no transmission": func(v *model.Vehicle) { v.Transmission = model.TransmissionUnset },
		"no fuel":         func(v *model.Vehicle) { v.FuelType = model.FuelTypeUnset },
		"zero price":      func(v *model.Vehicle) { v.PricePerDay = 0 },
		"nan price":       func(v *model.Vehicle) { v.PricePerDay = math.NaN() },
		"high rating":     func(v *model.Vehicle) { v.Rating = 5.5 },
	} {
		t.Run(name, func(t *testing.T) {
			v := valid
			mutate(&v)
			assert.Error(t, v.Validate())
		})
	}
}

func ptr[T any](x T) *T {
	return &x
}

func TestFilterCriteria(t *testing.T) {
	var fc model.FilterCriteria
	assert.True(t, fc.IsEmpty())
	assert.True(t, (*model.FilterCriteria)(nil).IsNilOrEmpty())

	fc = model.FilterCriteria{
		Brand:             "  BMW ",
		TransmissionTypes: []model.Transmission{model.TransmissionUnset},
		Features:          []string{" ", "GPS "},
		MinPrice:          ptr(10.0),
		MaxPrice:          ptr(20.0),
		MaxYear:           ptr(2024),
	}
	fc.Normalize()
	assert.Equal(t, "BMW", fc.Brand)
	assert.Nil(t, fc.TransmissionTypes)
	assert.Equal(t, []string{"GPS"}, fc.Features)
	assert.Equal(t, 4, fc.Count(), "brand, features, price, and year")

	other := fc
	other.MaxYear = ptr(2024)
	assert.True(t, fc.Equal(&other))
	other.MaxYear = ptr(2023)
	assert.False(t, fc.Equal(&other))
	assert.True(t, (&model.FilterCriteria{}).Equal(nil))
}

func TestCartTotals(t *testing.T) {
	c := model.Cart{Items: []model.CartLineItem{
		{Days: 2, TotalPrice: 3000},
		{Days: 5, TotalPrice: 6000},
	}}
	assert.Equal(t, model.CartTotals{TotalItems: 2, TotalPrice: 9000}, c.Totals())
	assert.Equal(t, model.CartTotals{}, (&model.Cart{}).Totals())
}

func TestSameView(t *testing.T) {
	p := &model.CatalogPreferences{Search: "bmw", Page: 3}
	q := &model.CatalogQuery{Search: "bmw", Page: 1}
	assert.True(t, p.SameView(q), "page is ignored")
	q.ViewMode = model.ViewList
	assert.False(t, p.SameView(q))
}

func TestBookingEnums(t *testing.T) {
	assert.NoError(t, model.BookingCanceled.Validate())
	assert.Error(t, model.BookingStatus("lost").Validate())
	assert.NoError(t, model.PaymentRefunded.Validate())
	assert.Error(t, model.PaymentMethod("bitcoin").Validate())
	assert.NoError(t, model.CarMaintenance.Validate())
}

func TestAdminCarVehicle(t *testing.T) {
	ac := model.AdminCar{
		ID: "9", Brand: "Kia", Status: model.CarUnavailable,
		Features: []string{"GPS"},
	}
	v := ac.Vehicle()
	assert.Equal(t, model.DefaultSeats, v.Seats)
	assert.False(t, v.Available)
	v.Features[0] = "changed"
	assert.Equal(t, "GPS", ac.Features[0])
}

func TestSemVer(t *testing.T) {
	var sv model.SemVer
	require.NoError(t, sv.UnmarshalText([]byte("1.2")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv)
	assert.Equal(t, "1.2.0", sv.String())

	assert.Error(t, sv.UnmarshalText([]byte("1.2.3.4")))
	assert.Error(t, sv.UnmarshalText([]byte("1.-2")))
	assert.Equal(t, model.SemVer{1, 2, 0}, sv, "kept on errors")

	assert.NoError(t, sv.Supports(1, 2))
	assert.NoError(t, sv.Supports(1, 5))
	assert.ErrorContains(t, sv.Supports(1, 1), "minor")
	assert.ErrorContains(t, sv.Supports(2, 9), "major")
}
