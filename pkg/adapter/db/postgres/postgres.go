// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts GORM (over the pgx driver) to the repo.Pool,
// repo.Conn, and repo.Tx interfaces. Repository packages, such as the
// carsrp and kvrp, receive *Conn or *Tx instances and run their
// queries using the embedded *gorm.DB instances.
package postgres

import (
	"context"
	"fmt"
)

// AutoMigrate creates the tables of the given GORM models (or adds
// their missing columns and indexes) using the q queryer.
func AutoMigrate[Q Queryer](ctx context.Context, q Q, models ...any) error {
	if err := q.GORM(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating %d models: %w", len(models), err)
	}
	return nil
}

// Count returns the number of rows of the table. The table name is
// interpolated, so it must not be taken from user input.
func Count[Q Queryer](ctx context.Context, q Q, table string) (int64, error) {
	rows, err := q.Query(ctx, "SELECT count(*) FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	defer rows.Close()
	var n int64
	if rows.Next() {
		if err = rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scanning %s count: %w", table, err)
		}
	}
	return n, rows.Err()
}
