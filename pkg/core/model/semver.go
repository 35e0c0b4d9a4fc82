// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a major.minor.patch version. The configuration file format
// is versioned with it. Missing trailing components are zero, so "1"
// and "1.0" are parsed as 1.0.0.
type SemVer [3]uint

// UnmarshalText parses text as one to three dot-separated non-negative
// numbers. The sv is left unchanged on errors.
func (sv *SemVer) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ".")
	if len(parts) > len(sv) {
		return fmt.Errorf("the %q has too many components", text)
	}
	var v SemVer
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return fmt.Errorf("the %q component is not a number", p)
		}
		v[i] = uint(n)
	}
	*sv = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (sv SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// String formats sv as major.minor.patch.
func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}

// Supports returns nil if a reader of the major.minor version can read
// a file of the sv version, i.e., the major versions are equal and sv
// is not a newer minor version.
func (sv SemVer) Supports(major, minor uint) error {
	switch {
	case sv[0] != major:
		return fmt.Errorf("incompatible major version: %d", sv[0])
	case sv[1] > minor:
		return fmt.Errorf("unsupported minor version: %d", sv[1])
	}
	return nil
}
