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

// Transmission specifies the transmission type of a vehicle. Although
// this enum is numeric, it is (de)serialized as a lower-case string
// for readability in the adapter layer.
type Transmission int

// Valid values for the Transmission enum. The zero value indicates
// that no transmission is specified, which is invalid for a Vehicle
// but is used by FilterCriteria in order to express "no constraint".
const (
	TransmissionUnset Transmission = iota

	TransmissionAutomatic
	TransmissionManual
	TransmissionRobotized
	TransmissionCVT
)

// ErrUnknownTransmission indicates that a given string may not be
// parsed as a known transmission type. Callers know about the invalid
// string, so it is not repeated in the error.
var ErrUnknownTransmission = errors.New("unknown transmission type")

// TransmissionError indicates an invalid transmission enum value.
type TransmissionError int

// Error implements the error interface, returning a string
// representation of the TransmissionError.
func (e TransmissionError) Error() string {
	return fmt.Sprintf("invalid transmission type: %d", e)
}

// Validate returns nil if t is a known (and set) transmission type.
// For other values, an instance of the TransmissionError is returned.
func (t Transmission) Validate() error {
	switch t {
	case TransmissionAutomatic, TransmissionManual,
		TransmissionRobotized, TransmissionCVT:
		return nil
	default:
		return TransmissionError(t)
	}
}

// String converts the Transmission enum to a string. The unset value
// is converted to an empty string and invalid values cause a panic.
func (t Transmission) String() string {
	switch t {
	case TransmissionUnset:
		return ""
	case TransmissionAutomatic:
		return "automatic"
	case TransmissionManual:
		return "manual"
	case TransmissionRobotized:
		return "robotized"
	case TransmissionCVT:
		return "cvt"
	default:
		panic(TransmissionError(t))
	}
}

// ParseTransmission parses the given string case-insensitively and
// returns a Transmission. An empty (or blank) string is parsed as the
// TransmissionUnset value. Unknown strings are reported by returning
// the ErrUnknownTransmission error.
func ParseTransmission(s string) (Transmission, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TransmissionUnset, nil
	case "automatic":
		return TransmissionAutomatic, nil
	case "manual":
		return TransmissionManual, nil
	case "robotized":
		return TransmissionRobotized, nil
	case "cvt":
		return TransmissionCVT, nil
	default:
		return TransmissionUnset, ErrUnknownTransmission
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t Transmission) MarshalText() ([]byte, error) {
	if t != TransmissionUnset {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// In case of errors, t will be left unchanged.
func (t *Transmission) UnmarshalText(text []byte) error {
	tt, err := ParseTransmission(string(text))
	if err != nil {
		return fmt.Errorf("%q: %w", text, err)
	}
	*t = tt
	return nil
}
