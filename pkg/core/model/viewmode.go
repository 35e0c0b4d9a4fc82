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

// ViewMode specifies how the catalog page is rendered. It decides the
// page size, so it is a part of the catalog query.
type ViewMode int

// Valid values for the ViewMode enum. The zero value is ViewGrid.
const (
	ViewGrid ViewMode = iota
	ViewList
)

// ErrUnknownViewMode indicates that a string is not a known view mode.
var ErrUnknownViewMode = errors.New("unknown view mode")

// ViewModeError indicates an invalid ViewMode enum value.
type ViewModeError int

// Error implements the error interface.
func (e ViewModeError) Error() string {
	return fmt.Sprintf("invalid view mode: %d", e)
}

// Validate returns nil if vm is a known view mode.
func (vm ViewMode) Validate() error {
	switch vm {
	case ViewGrid, ViewList:
		return nil
	default:
		return ViewModeError(vm)
	}
}

// String converts vm to "grid" or "list". Invalid values cause a panic.
func (vm ViewMode) String() string {
	switch vm {
	case ViewGrid:
		return "grid"
	case ViewList:
		return "list"
	default:
		panic(ViewModeError(vm))
	}
}

// ParseViewMode parses s case-insensitively. A blank s is ViewGrid.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return ViewGrid, nil
	case "list":
		return ViewList, nil
	default:
		return ViewGrid, ErrUnknownViewMode
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (vm ViewMode) MarshalText() ([]byte, error) {
	if err := vm.Validate(); err != nil {
		return nil, err
	}
	return []byte(vm.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (vm *ViewMode) UnmarshalText(text []byte) error {
	m, err := ParseViewMode(string(text))
	if err != nil {
		return fmt.Errorf("%q: %w", text, err)
	}
	*vm = m
	return nil
}
