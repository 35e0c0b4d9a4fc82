// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/autorent/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is a running transaction which is created by Conn.Tx and is only
// valid until its handler returns. It must not be used concurrently.
// The InitDB use case seeds the vehicles table and the key-value
// table in one Tx, so a failed seed leaves no partial rows behind.
type Tx struct {
	*gorm.DB
}

// Exec runs sql with args and returns the number of affected rows.
// Both of the $1 and ? placeholder styles are accepted.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execRaw(tx.DB.WithContext(ctx), sql, args)
}

// Query runs sql with args. The returned Rows must be closed before
// another statement is sent through tx.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return queryRaw(tx.DB.WithContext(ctx), sql, args)
}

// IsTx prevents a Conn from being used as a repo.Tx by mistake.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB bound to ctx.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
