// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package kvrp implements the repo.KV interface, persisting the string
// key/value entries (such as the serialized carts) in the kv_entries
// table of a PostgreSQL database.
package kvrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (ge *gEntry) TableName() string {
	return "kv_entries"
}

// Migrate creates the kv_entries table if it does not exist yet.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return postgres.AutoMigrate(ctx, q, &gEntry{})
}

// Get returns the value of key and true, or an empty string and false
// if key is not present.
func Get[Q postgres.Queryer](ctx context.Context, q Q, key string) (string, bool, error) {
	ge := &gEntry{}
	err := q.GORM(ctx).Where("key=?", key).Take(ge).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("query: %w", err)
	}
	return ge.Value, true, nil
}

// Set inserts key or overwrites its current value.
func Set[Q postgres.Queryer](ctx context.Context, q Q, key, value string) error {
	ge := &gEntry{Key: key, Value: value}
	err := q.GORM(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(ge).Error
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func Delete[Q postgres.Queryer](ctx context.Context, q Q, key string) error {
	err := q.GORM(ctx).Where("key=?", key).Delete(&gEntry{}).Error
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	return postgres.Count(ctx, q, "kv_entries")
}
