// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"
	"errors"
	"time"

	"github.com/momeni/autorent/pkg/core/model"
)

// ErrVehicleNotFound is returned by Inventory.Vehicle when no vehicle
// has the requested ID.
var ErrVehicleNotFound = errors.New("vehicle not found")

// Inventory supplies the ordered list of vehicles which are offered in
// the storefront. The order of the Vehicles result is the inventory
// (insertion) order which is kept by the default catalog sort key.
// Callers may keep the returned slices, so implementations must not
// modify them afterwards.
type Inventory interface {
	Vehicles(ctx context.Context) ([]model.Vehicle, error)

	// Vehicle returns the id vehicle or an error wrapping the
	// ErrVehicleNotFound if it does not exist.
	Vehicle(ctx context.Context, id string) (*model.Vehicle, error)
}

// KVStore is a durable key-value storage with string keys and values.
// Values survive process restarts. A missing key is reported by a false
// found result (and a nil error) from the Get method.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionStore is a KVStore whose entries may expire. It is used for
// keeping per-session state which must not outlive its session.
type SessionStore interface {
	KVStore

	// SetTTL stores value for key and makes it expire after ttl.
	// A non-positive ttl makes the entry persistent like Set.
	SetTTL(ctx context.Context, key, value string, ttl time.Duration) error
}
