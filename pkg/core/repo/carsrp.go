// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/autorent/pkg/core/model"
)

// CarsConnQueryer runs the vehicles queries outside of a transaction.
type CarsConnQueryer interface {
	CarsQueryer
}

// CarsTxQueryer runs the vehicles queries in a transaction. Creating
// the table and locking it are only permitted in a transaction.
type CarsTxQueryer interface {
	CarsQueryer
	Migrate(ctx context.Context) error

	// Lock blocks other writers of the vehicles table until the end
	// of the transaction.
	Lock(ctx context.Context) error
}

// CarsQueryer lists the operations on the stored vehicles. List keeps
// the insertion order and Upsert keeps the position of an updated
// vehicle.
type CarsQueryer interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	ByID(ctx context.Context, id string) (*model.Vehicle, error)
	Upsert(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Cars is the vehicles repository. Its Conn and Tx methods wrap a
// connection or transaction of the same database adapter.
type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
