// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"slices"
	"strings"
)

// FilterCriteria describes the structured constraints which may be
// selected in the catalog filter panel. Every dimension is optional.
// A blank string, a zero enum value, an empty set, or a nil pointer
// means that no constraint is imposed on that dimension (it never
// means "match an empty value").
//
// Single-valued and multi-valued dimensions of the same attribute
// (e.g., Transmission and TransmissionTypes) are independent. When both
// are present, a vehicle must satisfy both of them.
type FilterCriteria struct {
	Brand        string       `json:"brand,omitempty" yaml:"brand,omitempty"`
	Transmission Transmission `json:"transmission,omitempty" yaml:"transmission,omitempty"`
	FuelType     FuelType     `json:"fuelType,omitempty" yaml:"fuel-type,omitempty"`

	TransmissionTypes []Transmission `json:"transmissionTypes,omitempty" yaml:"transmission-types,omitempty"`
	FuelTypes         []FuelType     `json:"fuelTypes,omitempty" yaml:"fuel-types,omitempty"`
	Features          []string       `json:"features,omitempty" yaml:"features,omitempty"`

	MinPrice *float64 `json:"minPrice,omitempty" yaml:"min-price,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty" yaml:"max-price,omitempty"`
	MinYear  *int     `json:"minYear,omitempty" yaml:"min-year,omitempty"`
	MaxYear  *int     `json:"maxYear,omitempty" yaml:"max-year,omitempty"`
}

// Normalize removes the blank entries, so a criteria which was filled
// from query parameters can be compared with another one. Brand and
// feature values are trimmed and empty ones are dropped. The unset
// enum values are dropped from the multi-valued sets. The slices are
// reallocated, so their original backing arrays are not modified.
func (fc *FilterCriteria) Normalize() {
	fc.Brand = strings.TrimSpace(fc.Brand)
	fc.TransmissionTypes = slices.DeleteFunc(
		slices.Clone(fc.TransmissionTypes), func(t Transmission) bool {
			return t == TransmissionUnset
		},
	)
	fc.FuelTypes = slices.DeleteFunc(
		slices.Clone(fc.FuelTypes), func(f FuelType) bool {
			return f == FuelTypeUnset
		},
	)
	var features []string
	for _, f := range fc.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	fc.Features = features
	if len(fc.TransmissionTypes) == 0 {
		fc.TransmissionTypes = nil
	}
	if len(fc.FuelTypes) == 0 {
		fc.FuelTypes = nil
	}
	if len(fc.Features) == 0 {
		fc.Features = nil
	}
}

// Count returns the number of active filter dimensions. A pair of
// minimum and maximum bounds on one attribute counts once.
func (fc *FilterCriteria) Count() int {
	n := 0
	if strings.TrimSpace(fc.Brand) != "" {
		n++
	}
	if fc.Transmission != TransmissionUnset {
		n++
	}
	if fc.FuelType != FuelTypeUnset {
		n++
	}
	if len(fc.TransmissionTypes) > 0 {
		n++
	}
	if len(fc.FuelTypes) > 0 {
		n++
	}
	if len(fc.Features) > 0 {
		n++
	}
	if fc.MinPrice != nil || fc.MaxPrice != nil {
		n++
	}
	if fc.MinYear != nil || fc.MaxYear != nil {
		n++
	}
	return n
}

// IsEmpty returns true if no dimension is constrained.
func (fc *FilterCriteria) IsEmpty() bool {
	return fc.Count() == 0
}

// Equal reports whether fc and other impose the same constraints.
// Sets are compared in order, so callers are expected to keep the
// order which was selected by the user.
func (fc *FilterCriteria) Equal(other *FilterCriteria) bool {
	if fc == nil || other == nil {
		return fc.IsNilOrEmpty() && other.IsNilOrEmpty()
	}
	return strings.TrimSpace(fc.Brand) == strings.TrimSpace(other.Brand) &&
		fc.Transmission == other.Transmission &&
		fc.FuelType == other.FuelType &&
		slices.Equal(fc.TransmissionTypes, other.TransmissionTypes) &&
		slices.Equal(fc.FuelTypes, other.FuelTypes) &&
		slices.Equal(fc.Features, other.Features) &&
		equalPtr(fc.MinPrice, other.MinPrice) &&
		equalPtr(fc.MaxPrice, other.MaxPrice) &&
		equalPtr(fc.MinYear, other.MinYear) &&
		equalPtr(fc.MaxYear, other.MaxYear)
}

// IsNilOrEmpty is similar to IsEmpty, but accepts a nil fc too.
func (fc *FilterCriteria) IsNilOrEmpty() bool {
	return fc == nil || fc.IsEmpty()
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
