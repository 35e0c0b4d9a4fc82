// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/autorent/pkg/core/model"
)

// AdminAPI is the contract of the back-office REST API. Implementations
// carry the bearer token of the logged in user (if any) with each
// request and report all non-2xx responses as cerr errors.
type AdminAPI interface {
	// Login authenticates cred and keeps the returned token for the
	// next requests.
	Login(ctx context.Context, cred model.Credentials) (*model.Session, error)

	// Logout forgets the kept token. It does not contact the server.
	Logout(ctx context.Context) error

	CurrentUser(ctx context.Context) (*model.User, error)

	ListCars(ctx context.Context, q model.CarQuery) (*model.Page[model.AdminCar], error)
	Car(ctx context.Context, id string) (*model.AdminCar, error)
	CreateCar(ctx context.Context, c *model.AdminCar) (*model.AdminCar, error)
	UpdateCar(ctx context.Context, id string, p *model.CarPatch) (*model.AdminCar, error)
	DeleteCar(ctx context.Context, id string) error
	PopularCars(ctx context.Context, limit int) ([]model.PopularCar, error)

	ListBookings(ctx context.Context, q model.BookingQuery) (*model.Page[model.Booking], error)
	Booking(ctx context.Context, id string) (*model.Booking, error)
	CreateBooking(ctx context.Context, b *model.Booking) (*model.Booking, error)
	UpdateBooking(ctx context.Context, id string, p *model.BookingPatch) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	RecentBookings(ctx context.Context, limit int) ([]model.Booking, error)

	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}
