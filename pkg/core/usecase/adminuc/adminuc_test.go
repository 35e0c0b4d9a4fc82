// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

// fakeAPI records the calls which reach the admin API. Embedding the
// interface makes unexpected calls panic.
type fakeAPI struct {
	repo.AdminAPI

	cars     map[string]model.AdminCar
	bookings map[string]model.Booking
	patches  []model.CarPatch
	created  []model.AdminCar
	limits   []int
	logins   int
}

func (f *fakeAPI) Login(_ context.Context, cred model.Credentials) (*model.Session, error) {
	f.logins++
	return &model.Session{Token: "t", User: model.User{Email: cred.Email}}, nil
}

func (f *fakeAPI) ListCars(_ context.Context, q model.CarQuery) (*model.Page[model.AdminCar], error) {
	return &model.Page[model.AdminCar]{Page: q.Page}, nil
}

func (f *fakeAPI) Car(_ context.Context, id string) (*model.AdminCar, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, cerr.NotFound(repo.ErrVehicleNotFound)
	}
	return &c, nil
}

func (f *fakeAPI) CreateCar(_ context.Context, c *model.AdminCar) (*model.AdminCar, error) {
	f.created = append(f.created, *c)
	return c, nil
}

func (f *fakeAPI) UpdateCar(_ context.Context, id string, p *model.CarPatch) (*model.AdminCar, error) {
	f.patches = append(f.patches, *p)
	c := f.cars[id]
	applyCarPatch(&c, p)
	return &c, nil
}

func (f *fakeAPI) PopularCars(_ context.Context, limit int) ([]model.PopularCar, error) {
	f.limits = append(f.limits, limit)
	return nil, nil
}

func (f *fakeAPI) Booking(_ context.Context, id string) (*model.Booking, error) {
	b := f.bookings[id]
	return &b, nil
}

func (f *fakeAPI) UpdateBooking(_ context.Context, id string, p *model.BookingPatch) (*model.Booking, error) {
	b := f.bookings[id]
	applyBookingPatch(&b, p)
	return &b, nil
}

func (f *fakeAPI) RecentBookings(_ context.Context, limit int) ([]model.Booking, error) {
	f.limits = append(f.limits, limit)
	return nil, nil
}

type AdminTestSuite struct {
	suite.Suite

	ctx context.Context
	api *fakeAPI
	uc  *UseCase
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (ats *AdminTestSuite) SetupTest() {
	ats.ctx = context.Background()
	ats.api = &fakeAPI{
		cars: map[string]model.AdminCar{
			"1": validCar(model.CarAvailable),
			"2": validCar(model.CarMaintenance),
		},
		bookings: map[string]model.Booking{
			"b": {
				CarID:         "1",
				StartDate:     "2025-06-01",
				EndDate:       "2025-06-05",
				Status:        model.BookingPending,
				PaymentStatus: model.PaymentPending,
			},
		},
	}
	ats.uc = New(ats.api)
	ats.uc.now = func() time.Time {
		return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	}
}

func validCar(status model.CarStatus) model.AdminCar {
	return model.AdminCar{
		Brand:        gofakeit.CarMaker(),
		Model:        gofakeit.CarModel(),
		Year:         gofakeit.Number(2000, 2025),
		Transmission: model.TransmissionAutomatic,
		FuelType:     model.FuelTypeHybrid,
		PricePerDay:  gofakeit.Price(1, 5000),
		Status:       status,
		LicensePlate: gofakeit.Regex("[A-Z]{3}-[0-9]{3}"),
		Rating:       gofakeit.Float64Range(0, 5),
	}
}

func (ats *AdminTestSuite) requireStatus(err error, status int) {
	var ce *cerr.Error
	ats.Require().ErrorAs(err, &ce)
	ats.Equal(status, ce.HTTPStatusCode)
}

func (ats *AdminTestSuite) TestLoginValidation() {
	_, err := ats.uc.Login(ats.ctx, model.Credentials{Email: "nope"})
	ats.requireStatus(err, http.StatusBadRequest)
	s, err := ats.uc.Login(ats.ctx, model.Credentials{
		Email: gofakeit.Email(), Password: gofakeit.Password(true, true, true, false, false, 12),
	})
	ats.Require().NoError(err)
	ats.Equal("t", s.Token)
	ats.Equal(1, ats.api.logins)
}

func (ats *AdminTestSuite) TestCreateCarValidation() {
	c := validCar(model.CarAvailable)
	_, err := ats.uc.CreateCar(ats.ctx, &c)
	ats.Require().NoError(err)

	for name, mutate := range map[string]func(c *model.AdminCar){
		"no brand":      func(c *model.AdminCar) { c.Brand = "" },
		"too old":       func(c *model.AdminCar) { c.Year = 1949 },
		"future":        func(c *model.AdminCar) { c.Year = 2027 },
		"cheap":         func(c *model.AdminCar) { c.PricePerDay = 0.5 },
		"no plate":      func(c *model.AdminCar) { c.LicensePlate = "" },
		"bad status":    func(c *model.AdminCar) { c.Status = "sold" },
		"no fuel":       func(c *model.AdminCar) { c.FuelType = model.FuelTypeUnset },
		"rating bounds": func(c *model.AdminCar) { c.Rating = 6 },
	} {
		ats.Run(name, func() {
			c := validCar(model.CarAvailable)
			mutate(&c)
			_, err := ats.uc.CreateCar(ats.ctx, &c)
			ats.requireStatus(err, http.StatusBadRequest)
		})
	}
	ats.Len(ats.api.created, 1)
}

func (ats *AdminTestSuite) TestUpdateCarValidatesPatchedCar() {
	year := 1900
	_, err := ats.uc.UpdateCar(ats.ctx, "1", &model.CarPatch{Year: &year})
	ats.requireStatus(err, http.StatusBadRequest)
	ats.Empty(ats.api.patches)

	price := 42.0
	c, err := ats.uc.UpdateCar(ats.ctx, "1", &model.CarPatch{PricePerDay: &price})
	ats.Require().NoError(err)
	ats.Equal(42.0, c.PricePerDay)
}

func (ats *AdminTestSuite) TestToggleAvailability() {
	c, err := ats.uc.ToggleAvailability(ats.ctx, "1")
	ats.Require().NoError(err)
	ats.Equal(model.CarUnavailable, c.Status)

	c, err = ats.uc.ToggleAvailability(ats.ctx, "2")
	ats.Require().NoError(err)
	ats.Equal(model.CarAvailable, c.Status, "maintenance becomes available")

	_, err = ats.uc.ToggleAvailability(ats.ctx, "3")
	ats.requireStatus(err, http.StatusNotFound)
}

func (ats *AdminTestSuite) TestBookings() {
	status := model.BookingStatus("lost")
	_, err := ats.uc.UpdateBooking(ats.ctx, "b", &model.BookingPatch{Status: &status})
	ats.requireStatus(err, http.StatusBadRequest)

	end := "2025-05-01"
	_, err = ats.uc.UpdateBooking(ats.ctx, "b", &model.BookingPatch{EndDate: &end})
	ats.requireStatus(err, http.StatusBadRequest)

	status = model.BookingActive
	b, err := ats.uc.UpdateBooking(ats.ctx, "b", &model.BookingPatch{Status: &status})
	ats.Require().NoError(err)
	ats.Equal(model.BookingActive, b.Status)

	_, err = ats.uc.Bookings(ats.ctx, model.BookingQuery{Page: -1})
	ats.requireStatus(err, http.StatusBadRequest)
}

func (ats *AdminTestSuite) TestListDefaults() {
	_, err := ats.uc.PopularCars(ats.ctx, 0)
	ats.Require().NoError(err)
	_, err = ats.uc.RecentBookings(ats.ctx, -3)
	ats.Require().NoError(err)
	_, err = ats.uc.RecentBookings(ats.ctx, 10)
	ats.Require().NoError(err)
	ats.Equal([]int{DefaultPopularLimit, DefaultRecentLimit, 10}, ats.api.limits)

	_, err = ats.uc.Cars(ats.ctx, model.CarQuery{Status: "sold"})
	ats.requireStatus(err, http.StatusBadRequest)
	p, err := ats.uc.Cars(ats.ctx, model.CarQuery{Page: 2})
	ats.Require().NoError(err)
	ats.Equal(2, p.Page)
}
