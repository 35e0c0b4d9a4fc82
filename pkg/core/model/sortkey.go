// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// SortKey specifies the ordering of the catalog results.
// The zero value is SortDefault which keeps the inventory order.
type SortKey int

// Valid values for the SortKey enum.
const (
	SortDefault SortKey = iota
	SortPriceAsc
	SortPriceDesc
	SortYearDesc
	SortYearAsc
	SortRatingDesc
	SortNameAsc
)

// ErrUnknownSortKey indicates that a string is not a known sort key.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeyError indicates an invalid SortKey enum value.
type SortKeyError int

// Error implements the error interface.
func (e SortKeyError) Error() string {
	return fmt.Sprintf("invalid sort key: %d", e)
}

// Validate returns nil if sk is a known sort key.
func (sk SortKey) Validate() error {
	if sk < SortDefault || sk > SortNameAsc {
		return SortKeyError(sk)
	}
	return nil
}

// String converts the SortKey enum to its textual form which is used
// in query parameters, e.g., "price-asc". Invalid values cause a panic.
func (sk SortKey) String() string {
	switch sk {
	case SortDefault:
		return "default"
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortYearDesc:
		return "year-desc"
	case SortYearAsc:
		return "year-asc"
	case SortRatingDesc:
		return "rating-desc"
	case SortNameAsc:
		return "name-asc"
	default:
		panic(SortKeyError(sk))
	}
}

// ParseSortKey parses s case-insensitively. A blank s is parsed as the
// SortDefault value.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return SortDefault, nil
	case "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	case "year-desc":
		return SortYearDesc, nil
	case "year-asc":
		return SortYearAsc, nil
	case "rating-desc":
		return SortRatingDesc, nil
	case "name-asc":
		return SortNameAsc, nil
	default:
		return SortDefault, ErrUnknownSortKey
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (sk SortKey) MarshalText() ([]byte, error) {
	if err := sk.Validate(); err != nil {
		return nil, err
	}
	return []byte(sk.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (sk *SortKey) UnmarshalText(text []byte) error {
	k, err := ParseSortKey(string(text))
	if err != nil {
		return fmt.Errorf("%q: %w", text, err)
	}
	*sk = k
	return nil
}
