// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import (
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/samber/lo"
)

// Facets collects the distinct brands, transmissions, fuel types, and
// features of the inventory (in their first appearance order) plus the
// price and year bounds. Missing prices and years are ignored for the
// bounds computation.
func Facets(inventory []model.Vehicle) model.Facets {
	f := model.Facets{
		Brands: lo.Uniq(lo.Map(inventory, func(v model.Vehicle, _ int) string {
			return v.Brand
		})),
		Transmissions: lo.Uniq(lo.Map(
			inventory, func(v model.Vehicle, _ int) model.Transmission {
				return v.Transmission
			},
		)),
		FuelTypes: lo.Uniq(lo.Map(
			inventory, func(v model.Vehicle, _ int) model.FuelType {
				return v.FuelType
			},
		)),
		Features: lo.Uniq(lo.FlatMap(
			inventory, func(v model.Vehicle, _ int) []string {
				return v.Features
			},
		)),
	}
	prices := lo.FilterMap(inventory, func(v model.Vehicle, _ int) (float64, bool) {
		return v.PricePerDay, validPrice(v.PricePerDay)
	})
	if len(prices) > 0 {
		f.MinPrice, f.MaxPrice = lo.Min(prices), lo.Max(prices)
	}
	years := lo.FilterMap(inventory, func(v model.Vehicle, _ int) (int, bool) {
		return v.Year, validYear(v.Year)
	})
	if len(years) > 0 {
		f.MinYear, f.MaxYear = lo.Min(years), lo.Max(years)
	}
	return f
}
