// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"
)

// Err returns an Attr holding the message of value, or "no-error" if
// value is nil.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Cart returns the "cart" Attr for a cart identifier.
func Cart(id string) slog.Attr {
	return slog.String("cart", id)
}

// Session returns the "session" Attr for a catalog session identifier.
func Session(id string) slog.Attr {
	return slog.String("session", id)
}

// Vehicle returns the "vehicle" Attr for a vehicle identifier.
func Vehicle(id string) slog.Attr {
	return slog.String("vehicle", id)
}
