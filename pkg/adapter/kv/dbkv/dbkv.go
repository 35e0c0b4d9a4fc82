// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbkv adapts a database connection pool and a repo.KV
// repository to the repo.KVStore interface. Each operation acquires
// one connection from the pool and releases it before returning.
package dbkv

import (
	"context"

	"github.com/momeni/autorent/pkg/core/repo"
)

// Store is a durable repo.KVStore backed by a relational database.
type Store struct {
	pool repo.Pool
	kv   repo.KV
}

// New instantiates a Store. The kv_entries table must be migrated
// beforehand (see the `db init` command).
func New(pool repo.Pool, kv repo.KV) *Store {
	return &Store{pool: pool, kv: kv}
}

func (s *Store) Get(ctx context.Context, key string) (
	value string, found bool, err error,
) {
	err = s.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		value, found, err = s.kv.Conn(c).Get(ctx, key)
		return err
	})
	return value, found, err
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return s.kv.Conn(c).Set(ctx, key, value)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return s.kv.Conn(c).Delete(ctx, key)
	})
}
