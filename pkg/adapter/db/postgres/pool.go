// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/autorent/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool is a set of database connections which are shared by the
// dbinv inventory, the dbkv store, and the db init command.
type Pool struct {
	*gorm.DB
}

// PoolOption customizes a Pool while it is created by NewPool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	maxConns      int
	slowThreshold time.Duration
}

// WithMaxConns limits the number of open connections. Zero means no
// limit.
func WithMaxConns(n int) PoolOption {
	return func(ps *poolSettings) {
		ps.maxConns = n
	}
}

// WithSlowThreshold sets the duration after which a statement is
// logged as slow.
func WithSlowThreshold(d time.Duration) PoolOption {
	return func(ps *poolSettings) {
		ps.slowThreshold = d
	}
}

// NewPool opens a pool for the url connection string and tests it by
// borrowing one connection. The GORM logger is redirected to the
// default slog logger at the warning level.
func NewPool(ctx context.Context, url string, opts ...PoolOption) (*Pool, error) {
	ps := poolSettings{slowThreshold: 200 * time.Millisecond}
	for _, opt := range opts {
		opt(&ps)
	}
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             ps.slowThreshold,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
				// Set to false in order to log with replaced vars
				ParameterizedQueries: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	if ps.maxConns > 0 {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("accessing sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(ps.maxConns)
		sqlDB.SetMaxIdleConns(ps.maxConns)
	}
	if err = pool.Conn(ctx, NoOpConnHandler); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// ConnHandler is the callback which receives a borrowed connection.
type ConnHandler = repo.ConnHandler

// NoOpConnHandler does nothing. It is used to test a new pool.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn borrows a connection from p and passes it to f. The connection
// returns to p when f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		return f(ctx, &Conn{DB: c})
	})
}

// Close closes all idle connections of p.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
