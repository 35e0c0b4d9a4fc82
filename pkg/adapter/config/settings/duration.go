// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings contains the helpers which are shared by the
// versioned config packages, such as the human-readable Duration type
// and the clamping of the bounded settings.
package settings

import (
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is read from YAML or environment
// variables in the time.ParseDuration format, e.g., "30m" or "1h30m".
type Duration time.Duration

// UnmarshalText parses data with time.ParseDuration. The d is only
// updated if data is valid.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// String formats d like time.Duration without its zero trailing
// units, so 1h0m0s becomes 1h and 30m0s becomes 30m.
func (d Duration) String() string {
	s := time.Duration(d).String()
	if t, ok := strings.CutSuffix(s, "m0s"); ok {
		s = t + "m"
	}
	if t, ok := strings.CutSuffix(s, "h0m"); ok {
		s = t + "h"
	}
	return s
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LogValue implements the slog.LogValuer interface.
func (d Duration) LogValue() slog.Value {
	return slog.DurationValue(time.Duration(d))
}
