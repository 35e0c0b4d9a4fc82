// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by JSON or YAML
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Vehicle models a rentable car as it is offered in the storefront
// catalog. Vehicles are reference data which are supplied by an
// inventory source and are never modified by the catalog or cart use
// cases. The ID is an opaque string which must be unique in one
// inventory and must not change during the lifetime of a record.
//
// When a Vehicle is added to a cart, it is copied by value into the
// cart line item. Therefore, later price changes in the inventory do
// not affect a cart which already holds that vehicle (price lock).
type Vehicle struct {
	ID    string `json:"id" yaml:"id"`
	Brand string `json:"brand" yaml:"brand"`
	Model string `json:"model" yaml:"model"`
	Year  int    `json:"year" yaml:"year"`
	Seats int    `json:"seats" yaml:"seats"`

	Transmission Transmission `json:"transmission" yaml:"transmission"`
	FuelType     FuelType     `json:"fuelType" yaml:"fuel-type"`

	PricePerDay float64 `json:"pricePerDay" yaml:"price-per-day"`
	Available   bool    `json:"available" yaml:"available"`

	ImageURL         string   `json:"imageUrl" yaml:"image-url"`
	AdditionalImages []string `json:"additionalImages,omitempty" yaml:"additional-images,omitempty"`
	Features         []string `json:"features" yaml:"features"`
	Rating           float64  `json:"rating" yaml:"rating"`
	Description      string   `json:"description" yaml:"description"`
}

// MaxRating is the inclusive upper bound of the Vehicle.Rating field.
const MaxRating = 5

// ErrEmptyVehicleID indicates that a vehicle has no identifier.
var ErrEmptyVehicleID = errors.New("empty vehicle id")

// Name returns the display name of the v vehicle, which is its brand
// and model separated by a single space. The name-asc catalog ordering
// compares vehicles by this name.
func (v *Vehicle) Name() string {
	return v.Brand + " " + v.Model
}

// Validate returns nil if v satisfies the Vehicle invariants, that is,
// it has a non-empty ID, valid transmission and fuel types, a positive
// daily price, and a rating in the [0, MaxRating] range.
// Inventory sources use it before exposing or persisting a record.
func (v *Vehicle) Validate() error {
	if v.ID == "" {
		return ErrEmptyVehicleID
	}
	if err := v.Transmission.Validate(); err != nil {
		return fmt.Errorf("vehicle %q: %w", v.ID, err)
	}
	if err := v.FuelType.Validate(); err != nil {
		return fmt.Errorf("vehicle %q: %w", v.ID, err)
	}
	if math.IsNaN(v.PricePerDay) || v.PricePerDay <= 0 {
		return fmt.Errorf(
			"vehicle %q: price per day (%v) is not positive",
			v.ID, v.PricePerDay,
		)
	}
	if math.IsNaN(v.Rating) || v.Rating < 0 || v.Rating > MaxRating {
		return fmt.Errorf(
			"vehicle %q: rating (%v) is out of [0, %d]",
			v.ID, v.Rating, MaxRating,
		)
	}
	return nil
}
