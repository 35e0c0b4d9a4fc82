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

// FuelType specifies the fuel type of a vehicle and is (de)serialized
// as a lower-case string. Its zero value means "unset" just like the
// Transmission enum.
type FuelType int

// Valid values for the FuelType enum.
const (
	FuelTypeUnset FuelType = iota

	FuelTypePetrol
	FuelTypeDiesel
	FuelTypeElectric
	FuelTypeHybrid
)

// ErrUnknownFuelType indicates that a string is not a known fuel type.
var ErrUnknownFuelType = errors.New("unknown fuel type")

// FuelTypeError indicates an invalid fuel type enum value.
type FuelTypeError int

// Error implements the error interface.
func (e FuelTypeError) Error() string {
	return fmt.Sprintf("invalid fuel type: %d", e)
}

// Validate returns nil if f is a known (and set) fuel type.
func (f FuelType) Validate() error {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid:
		return nil
	default:
		return FuelTypeError(f)
	}
}

// String converts the FuelType enum to a string. The unset value is
// converted to an empty string and invalid values cause a panic.
func (f FuelType) String() string {
	switch f {
	case FuelTypeUnset:
		return ""
	case FuelTypePetrol:
		return "petrol"
	case FuelTypeDiesel:
		return "diesel"
	case FuelTypeElectric:
		return "electric"
	case FuelTypeHybrid:
		return "hybrid"
	default:
		panic(FuelTypeError(f))
	}
}

// ParseFuelType parses s case-insensitively. A blank s is parsed as
// FuelTypeUnset.
func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FuelTypeUnset, nil
	case "petrol":
		return FuelTypePetrol, nil
	case "diesel":
		return FuelTypeDiesel, nil
	case "electric":
		return FuelTypeElectric, nil
	case "hybrid":
		return FuelTypeHybrid, nil
	default:
		return FuelTypeUnset, ErrUnknownFuelType
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (f FuelType) MarshalText() ([]byte, error) {
	if f != FuelTypeUnset {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *FuelType) UnmarshalText(text []byte) error {
	ff, err := ParseFuelType(string(text))
	if err != nil {
		return fmt.Errorf("%q: %w", text, err)
	}
	*f = ff
	return nil
}
