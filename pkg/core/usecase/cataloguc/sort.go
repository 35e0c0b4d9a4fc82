// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import (
	"cmp"
	"math"
	"slices"

	"github.com/momeni/autorent/pkg/core/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption is a functional option for the Sort function.
type SortOption func(so *sortOptions)

type sortOptions struct {
	lang language.Tag
}

// WithCollation makes the name-asc ordering to compare names using the
// collation rules of the lang language. By default, English rules are
// used.
func WithCollation(lang language.Tag) SortOption {
	return func(so *sortOptions) {
		so.lang = lang
	}
}

// Sort returns a sorted copy of the list based on the key ordering.
// The list itself is never reordered. Sorting is stable, so vehicles
// with equal sort keys keep their relative order. SortDefault keeps
// the input order as is.
//
// Vehicles with a missing sort field (a NaN, infinite, or non-positive
// price, a non-positive year, or a NaN or negative rating) are sorted
// as if they had the maximum observed value of that field among the
// other vehicles. Therefore, they do not reach the top of an ascending
// ordering.
func Sort(
	list []model.Vehicle, key model.SortKey, opts ...SortOption,
) []model.Vehicle {
	out := slices.Clone(list)
	switch key {
	case model.SortPriceAsc:
		sortBy(out, price, validPrice, false)
	case model.SortPriceDesc:
		sortBy(out, price, validPrice, true)
	case model.SortYearAsc:
		sortBy(out, year, validYear, false)
	case model.SortYearDesc:
		sortBy(out, year, validYear, true)
	case model.SortRatingDesc:
		sortBy(out, rating, validRating, true)
	case model.SortNameAsc:
		so := &sortOptions{lang: language.English}
		for _, opt := range opts {
			opt(so)
		}
		// a Collator may not be shared among goroutines
		c := collate.New(so.lang)
		slices.SortStableFunc(out, func(a, b model.Vehicle) int {
			return c.CompareString(a.Name(), b.Name())
		})
	}
	return out
}

func sortBy[T cmp.Ordered](
	list []model.Vehicle,
	field func(v *model.Vehicle) T,
	valid func(x T) bool,
	desc bool,
) {
	var maxObserved T
	found := false
	for i := range list {
		if x := field(&list[i]); valid(x) && (!found || x > maxObserved) {
			maxObserved, found = x, true
		}
	}
	keyOf := func(v *model.Vehicle) T {
		if x := field(v); valid(x) {
			return x
		}
		return maxObserved
	}
	slices.SortStableFunc(list, func(a, b model.Vehicle) int {
		if desc {
			return cmp.Compare(keyOf(&b), keyOf(&a))
		}
		return cmp.Compare(keyOf(&a), keyOf(&b))
	})
}

func price(v *model.Vehicle) float64 {
	return v.PricePerDay
}

func validPrice(p float64) bool {
	return p > 0 && !math.IsInf(p, 1)
}

func year(v *model.Vehicle) int {
	return v.Year
}

func validYear(y int) bool {
	return y > 0
}

func rating(v *model.Vehicle) float64 {
	return v.Rating
}

func validRating(r float64) bool {
	return r >= 0 && !math.IsInf(r, 1)
}
