// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package static provides an immutable, in-memory implementation of
// the repo.Inventory interface. Its vehicles are either the built-in
// seed catalog or are loaded from a YAML file once, at startup.
package static

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"gopkg.in/yaml.v3"
)

// Inventory keeps an ordered list of validated vehicles.
type Inventory struct {
	vehicles []model.Vehicle
	byID     map[string]int
}

// New validates vs and instantiates an Inventory with a copy of them.
// Vehicle IDs must be unique.
func New(vs []model.Vehicle) (*Inventory, error) {
	inv := &Inventory{
		vehicles: slices.Clone(vs),
		byID:     make(map[string]int, len(vs)),
	}
	for i := range inv.vehicles {
		v := &inv.vehicles[i]
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("vehicle #%d: %w", i, err)
		}
		if j, dup := inv.byID[v.ID]; dup {
			return nil, fmt.Errorf(
				"vehicles #%d and #%d have the same id %q", j, i, v.ID,
			)
		}
		inv.byID[v.ID] = i
	}
	return inv, nil
}

// Seeded instantiates an Inventory with the Seed vehicles.
func Seeded() *Inventory {
	inv, err := New(Seed())
	if err != nil {
		panic(err) // seed catalog is a compile-time constant
	}
	return inv
}

type file struct {
	Vehicles []model.Vehicle `yaml:"vehicles"`
}

// Load reads the path YAML file, which must have a top-level vehicles
// list, and instantiates an Inventory with its contents.
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	f := &file{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("unmarshalling %q: %w", path, err)
	}
	inv, err := New(f.Vehicles)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return inv, nil
}

// Vehicles returns the vehicles in their file (or seed) order.
func (inv *Inventory) Vehicles(context.Context) ([]model.Vehicle, error) {
	return slices.Clone(inv.vehicles), nil
}

// Vehicle returns a copy of the id vehicle.
func (inv *Inventory) Vehicle(_ context.Context, id string) (*model.Vehicle, error) {
	i, ok := inv.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", repo.ErrVehicleNotFound, id)
	}
	v := inv.vehicles[i]
	return &v, nil
}
