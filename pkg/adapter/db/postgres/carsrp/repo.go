// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp implements the repo.Cars interface, keeping the
// vehicles of the postgres inventory in the vehicles table. The seq
// column preserves the insertion order which is the default catalog
// order.
package carsrp

import (
	"context"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// Repo implements the repo.Cars interface. It keeps no state, so one
// instance may be shared by all connections.
type Repo struct {
}

// New instantiates a carsrp Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) List(ctx context.Context) ([]model.Vehicle, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) ByID(ctx context.Context, id string) (*model.Vehicle, error) {
	return ByID(ctx, cq.Conn, id)
}

func (cq connQueryer) Upsert(ctx context.Context, v *model.Vehicle) error {
	return Upsert(ctx, cq.Conn, v)
}

func (cq connQueryer) Delete(ctx context.Context, id string) (bool, error) {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Migrate(ctx context.Context) error {
	return Migrate(ctx, tq.Tx)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Vehicle, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) ByID(ctx context.Context, id string) (*model.Vehicle, error) {
	return ByID(ctx, tq.Tx, id)
}

func (tq txQueryer) Upsert(ctx context.Context, v *model.Vehicle) error {
	return Upsert(ctx, tq.Tx, v)
}

func (tq txQueryer) Delete(ctx context.Context, id string) (bool, error) {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) Count(ctx context.Context) (int64, error) {
	return Count(ctx, tq.Tx)
}

func (tq txQueryer) Lock(ctx context.Context) error {
	return Lock(ctx, tq.Tx)
}
