// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// RangeError reports a bounded setting which was out of its range.
// Value is the rejected value, or nil if the bounds themselves were
// inconsistent.
type RangeError[T cmp.Ordered] struct {
	Name     string
	Value    *T
	Min, Max *T
}

func (e *RangeError[T]) Error() string {
	if e.Value == nil {
		return fmt.Sprintf(
			"%s: min (%s) is greater than max (%s)",
			e.Name, show(e.Min), show(e.Max),
		)
	}
	return fmt.Sprintf(
		"%s (%v) is out of the [%s, %s] range",
		e.Name, *e.Value, show(e.Min), show(e.Max),
	)
}

func show[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

// Clamp checks that *value (if it is not nil) lies within the minb and
// maxb bounds (either of which may be nil). An out of range value is
// replaced by the violated bound and is reported as a *RangeError.
func Clamp[T cmp.Ordered](name string, value **T, minb, maxb *T) error {
	if minb != nil && maxb != nil && *minb > *maxb {
		return &RangeError[T]{Name: name, Min: minb, Max: maxb}
	}
	if *value == nil {
		return nil
	}
	v := **value
	switch {
	case minb != nil && v < *minb:
		**value = *minb
	case maxb != nil && v > *maxb:
		**value = *maxb
	default:
		return nil
	}
	return &RangeError[T]{Name: name, Value: &v, Min: minb, Max: maxb}
}
