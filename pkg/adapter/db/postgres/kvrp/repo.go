// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package kvrp

import (
	"context"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/core/repo"
)

// Repo represents the key/value entries repository instance.
type Repo struct {
}

// New instantiates a key/value entries repository. The returned
// instance does not hold a connection and may be shared.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn takes a Conn interface instance, unwraps it as required,
// and returns a KVConnQueryer interface which (with access to the
// implementation-dependent connection object) can run different
// permitted operations on the kv_entries table.
func (kv *Repo) Conn(c repo.Conn) repo.KVConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Get(ctx context.Context, key string) (string, bool, error) {
	return Get(ctx, cq.Conn, key)
}

func (cq connQueryer) Set(ctx context.Context, key, value string) error {
	return Set(ctx, cq.Conn, key, value)
}

func (cq connQueryer) Delete(ctx context.Context, key string) error {
	return Delete(ctx, cq.Conn, key)
}

func (cq connQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx takes a Tx interface instance, unwraps it as required,
// and returns a KVTxQueryer interface. Compared to the Conn,
// it also allows the table to be migrated.
func (kv *Repo) Tx(tx repo.Tx) repo.KVTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Migrate(ctx context.Context) error {
	return Migrate(ctx, tq.Tx)
}

func (tq txQueryer) Get(ctx context.Context, key string) (string, bool, error) {
	return Get(ctx, tq.Tx, key)
}

func (tq txQueryer) Set(ctx context.Context, key, value string) error {
	return Set(ctx, tq.Tx, key, value)
}

func (tq txQueryer) Delete(ctx context.Context, key string) error {
	return Delete(ctx, tq.Tx, key)
}

func (tq txQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, tq.Tx)
}
