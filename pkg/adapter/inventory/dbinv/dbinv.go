// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbinv implements the repo.Inventory interface by reading
// the vehicles table through a repo.Cars repository.
package dbinv

import (
	"context"

	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// Inventory reads the vehicles on every call, so changes which are
// made by the `db init` command (or other writers) are observed
// without a restart.
type Inventory struct {
	pool repo.Pool
	cars repo.Cars
}

func New(pool repo.Pool, cars repo.Cars) *Inventory {
	return &Inventory{pool: pool, cars: cars}
}

func (inv *Inventory) Vehicles(ctx context.Context) (vs []model.Vehicle, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		vs, err = inv.cars.Conn(c).List(ctx)
		return err
	})
	return vs, err
}

func (inv *Inventory) Vehicle(ctx context.Context, id string) (v *model.Vehicle, err error) {
	err = inv.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		v, err = inv.cars.Conn(c).ByID(ctx, id)
		return err
	})
	return v, err
}
