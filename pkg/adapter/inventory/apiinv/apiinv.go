// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package apiinv implements the repo.Inventory interface on top of the
// admin REST API, walking all pages of its cars listing.
package apiinv

import (
	"context"
	"fmt"
	"net/http"

	"github.com/momeni/autorent/pkg/core/cerr"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// DefaultPageLimit is the number of cars which are requested per page.
const DefaultPageLimit = 50

// CarLister is the subset of repo.AdminAPI which is used by Inventory.
type CarLister interface {
	ListCars(ctx context.Context, q model.CarQuery) (*model.Page[model.AdminCar], error)
	Car(ctx context.Context, id string) (*model.AdminCar, error)
}

// Inventory converts the admin cars to storefront vehicles. Cars which
// do not form valid vehicles (e.g., having an unknown fuel type) are
// skipped.
type Inventory struct {
	api   CarLister
	limit int
}

// New instantiates an Inventory. Non-positive limit values are
// replaced by DefaultPageLimit.
func New(api CarLister, limit int) *Inventory {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return &Inventory{api: api, limit: limit}
}

func (inv *Inventory) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vs []model.Vehicle
	for page := 1; ; page++ {
		p, err := inv.api.ListCars(ctx, model.CarQuery{
			Page: page, Limit: inv.limit,
		})
		if err != nil {
			return nil, fmt.Errorf("listing cars page %d: %w", page, err)
		}
		for i := range p.Data {
			v := p.Data[i].Vehicle()
			if v.Validate() == nil {
				vs = append(vs, v)
			}
		}
		if len(p.Data) == 0 || page >= p.TotalPages {
			return vs, nil
		}
	}
}

func (inv *Inventory) Vehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	c, err := inv.api.Car(ctx, id)
	if err != nil {
		if cerr.HasStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %q", repo.ErrVehicleNotFound, id)
		}
		return nil, fmt.Errorf("fetching car %q: %w", id, err)
	}
	v := c.Vehicle()
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", repo.ErrVehicleNotFound, err)
	}
	return &v, nil
}
