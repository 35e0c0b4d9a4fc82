// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/autorent/pkg/core/repo"
	"gorm.io/gorm"
)

// Conn is a single connection which is borrowed from a Pool for the
// lifetime of a ConnHandler. The carsrp and kvrp packages type-assert
// the repo.Conn values to *Conn in order to reach the embedded GORM.
type Conn struct {
	*gorm.DB
}

// TxHandler is the callback which receives a running transaction.
type TxHandler = repo.TxHandler

// Tx begins a transaction, passes it to f, and commits it if f returns
// nil. A returned error or a panic in f rolls the transaction back.
// A recovered panic is reported as an error instead of being re-raised.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		r := recover()
		rbErr := tx.Rollback().Error
		switch {
		case r != nil && rbErr != nil:
			err = fmt.Errorf("panicked: %v, rollback: %w", r, rbErr)
		case r != nil:
			err = fmt.Errorf("panicked: %v", r)
		case rbErr != nil:
			err = fmt.Errorf("handler: %w, rollback: %w", err, rbErr)
		default:
			err = fmt.Errorf("handler: %w", err)
		}
	}()
	if err = f(ctx, &Tx{DB: tx}); err != nil {
		return err
	}
	committed = true
	if err = tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Exec runs sql with args and returns the number of affected rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return execRaw(c.DB.WithContext(ctx), sql, args)
}

// Query runs sql with args and returns its result set.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return queryRaw(c.DB.WithContext(ctx), sql, args)
}

// IsConn prevents a Tx from being used as a repo.Conn by mistake.
func (c *Conn) IsConn() {
}

// GORM returns the embedded *gorm.DB bound to ctx.
func (c *Conn) GORM(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx)
}
