// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminuc contains the back-office UseCase. It validates the
// car and booking forms and delegates the actual work to the admin
// REST API.
package adminuc

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// Default number of items in the dashboard lists.
const (
	DefaultPopularLimit = 4
	DefaultRecentLimit  = 5
)

// UseCase represents the back-office use case.
type UseCase struct {
	api      repo.AdminAPI
	validate *validator.Validate
	now      func() time.Time
}

// New instantiates a back-office use case over the api admin REST API.
func New(api repo.AdminAPI) *UseCase {
	return &UseCase{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Login authenticates the cred credentials.
func (uc *UseCase) Login(
	ctx context.Context, cred model.Credentials,
) (*model.Session, error) {
	form := credentialsForm{Email: cred.Email, Password: cred.Password}
	if err := uc.validate.Struct(form); err != nil {
		return nil, cerr.BadRequest(err)
	}
	return uc.api.Login(ctx, cred)
}

// Logout forgets the current admin token.
func (uc *UseCase) Logout(ctx context.Context) error {
	return uc.api.Logout(ctx)
}

// CurrentUser returns the logged in user.
func (uc *UseCase) CurrentUser(ctx context.Context) (*model.User, error) {
	return uc.api.CurrentUser(ctx)
}

// Cars lists one page of cars.
func (uc *UseCase) Cars(
	ctx context.Context, q model.CarQuery,
) (*model.Page[model.AdminCar], error) {
	if q.Status != "" {
		if err := q.Status.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	if q.Page < 0 || q.Limit < 0 {
		return nil, cerr.BadRequest(fmt.Errorf(
			"negative page (%d) or limit (%d)", q.Page, q.Limit,
		))
	}
	return uc.api.ListCars(ctx, q)
}

// Car returns the id car.
func (uc *UseCase) Car(ctx context.Context, id string) (*model.AdminCar, error) {
	return uc.api.Car(ctx, id)
}

// CreateCar validates the c car form and creates it.
func (uc *UseCase) CreateCar(
	ctx context.Context, c *model.AdminCar,
) (*model.AdminCar, error) {
	if err := uc.validateCar(c); err != nil {
		return nil, err
	}
	return uc.api.CreateCar(ctx, c)
}

// UpdateCar applies the p patch to the id car. The patched car must
// satisfy the same rules as a new car, so the current car is fetched
// and the patch is validated against it before it is sent.
func (uc *UseCase) UpdateCar(
	ctx context.Context, id string, p *model.CarPatch,
) (*model.AdminCar, error) {
	c, err := uc.api.Car(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCarPatch(c, p)
	if err := uc.validateCar(c); err != nil {
		return nil, err
	}
	return uc.api.UpdateCar(ctx, id, p)
}

// DeleteCar deletes the id car.
func (uc *UseCase) DeleteCar(ctx context.Context, id string) error {
	return uc.api.DeleteCar(ctx, id)
}

// ToggleAvailability publishes or unpublishes the id car. An available
// car becomes unavailable and all other cars become available.
func (uc *UseCase) ToggleAvailability(
	ctx context.Context, id string,
) (*model.AdminCar, error) {
	c, err := uc.api.Car(ctx, id)
	if err != nil {
		return nil, err
	}
	status := model.CarAvailable
	if c.Status == model.CarAvailable {
		status = model.CarUnavailable
	}
	return uc.api.UpdateCar(ctx, id, &model.CarPatch{Status: &status})
}

// PopularCars lists the most occupied cars. A non-positive limit is
// replaced by DefaultPopularLimit.
func (uc *UseCase) PopularCars(
	ctx context.Context, limit int,
) ([]model.PopularCar, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	return uc.api.PopularCars(ctx, limit)
}

// Bookings lists one page of bookings.
func (uc *UseCase) Bookings(
	ctx context.Context, q model.BookingQuery,
) (*model.Page[model.Booking], error) {
	if q.Status != "" {
		if err := q.Status.Validate(); err != nil {
			return nil, cerr.BadRequest(err)
		}
	}
	if q.Page < 0 || q.Limit < 0 {
		return nil, cerr.BadRequest(fmt.Errorf(
			"negative page (%d) or limit (%d)", q.Page, q.Limit,
		))
	}
	return uc.api.ListBookings(ctx, q)
}

// Booking returns the id booking.
func (uc *UseCase) Booking(ctx context.Context, id string) (*model.Booking, error) {
	return uc.api.Booking(ctx, id)
}

// CreateBooking validates and creates the b booking.
func (uc *UseCase) CreateBooking(
	ctx context.Context, b *model.Booking,
) (*model.Booking, error) {
	if err := uc.validateBooking(b); err != nil {
		return nil, err
	}
	return uc.api.CreateBooking(ctx, b)
}

// UpdateBooking applies the p patch to the id booking.
func (uc *UseCase) UpdateBooking(
	ctx context.Context, id string, p *model.BookingPatch,
) (*model.Booking, error) {
	b, err := uc.api.Booking(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBookingPatch(b, p)
	if err := uc.validateBooking(b); err != nil {
		return nil, err
	}
	return uc.api.UpdateBooking(ctx, id, p)
}

// DeleteBooking deletes the id booking.
func (uc *UseCase) DeleteBooking(ctx context.Context, id string) error {
	return uc.api.DeleteBooking(ctx, id)
}

// RecentBookings lists the most recently created bookings. A
// non-positive limit is replaced by DefaultRecentLimit.
func (uc *UseCase) RecentBookings(
	ctx context.Context, limit int,
) ([]model.Booking, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return uc.api.RecentBookings(ctx, limit)
}

// DashboardStats returns the dashboard statistics.
func (uc *UseCase) DashboardStats(
	ctx context.Context,
) (*model.DashboardStats, error) {
	return uc.api.DashboardStats(ctx)
}
