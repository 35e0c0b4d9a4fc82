// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import (
	"strings"

	"github.com/momeni/autorent/pkg/core/model"
	"github.com/samber/lo"
)

// Search keeps the vehicles whose brand or model contains the query
// string, ignoring the letter case. A blank query matches everything
// and the inventory slice is returned as is.
func Search(inventory []model.Vehicle, query string) []model.Vehicle {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return inventory
	}
	return lo.Filter(inventory, func(v model.Vehicle, _ int) bool {
		return strings.Contains(strings.ToLower(v.Brand), q) ||
			strings.Contains(strings.ToLower(v.Model), q)
	})
}

type predicate func(v *model.Vehicle) bool

// ApplyFilters keeps the vehicles which satisfy every constrained
// dimension of the c criteria. Multi-valued dimensions are satisfied
// if any of their values matches. The relative order of vehicles is
// kept, although callers should not depend on it and must sort the
// result. Without any constraint, the list slice is returned as is.
// Contradictory criteria simply produce an empty result.
func ApplyFilters(
	list []model.Vehicle, c model.FilterCriteria,
) []model.Vehicle {
	preds := predicates(&c)
	if len(preds) == 0 {
		return list
	}
	return lo.Filter(list, func(v model.Vehicle, _ int) bool {
		for _, p := range preds {
			if !p(&v) {
				return false
			}
		}
		return true
	})
}

func predicates(c *model.FilterCriteria) []predicate {
	var preds []predicate
	if brand := strings.TrimSpace(c.Brand); brand != "" {
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.Brand == brand
		})
	}
	if t := c.Transmission; t != model.TransmissionUnset {
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.Transmission == t
		})
	}
	if f := c.FuelType; f != model.FuelTypeUnset {
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.FuelType == f
		})
	}
	if ts := c.TransmissionTypes; len(ts) > 0 {
		preds = append(preds, func(v *model.Vehicle) bool {
			return lo.Contains(ts, v.Transmission)
		})
	}
	if fs := c.FuelTypes; len(fs) > 0 {
		preds = append(preds, func(v *model.Vehicle) bool {
			return lo.Contains(fs, v.FuelType)
		})
	}
	if features := lo.Compact(lo.Map(c.Features, trim)); len(features) > 0 {
		preds = append(preds, func(v *model.Vehicle) bool {
			return lo.SomeBy(features, func(want string) bool {
				return lo.ContainsBy(v.Features, func(have string) bool {
					return strings.EqualFold(strings.TrimSpace(have), want)
				})
			})
		})
	}
	if p := c.MinPrice; p != nil {
		minPrice := *p
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.PricePerDay >= minPrice
		})
	}
	if p := c.MaxPrice; p != nil {
		maxPrice := *p
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.PricePerDay <= maxPrice
		})
	}
	if y := c.MinYear; y != nil {
		minYear := *y
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.Year >= minYear
		})
	}
	if y := c.MaxYear; y != nil {
		maxYear := *y
		preds = append(preds, func(v *model.Vehicle) bool {
			return v.Year <= maxYear
		})
	}
	return preds
}

func trim(s string, _ int) string {
	return strings.TrimSpace(s)
}
