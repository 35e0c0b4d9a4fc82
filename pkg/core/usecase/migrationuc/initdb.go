// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case. It
// may be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type InitDBUseCase struct {
	pool repo.Pool
	cars repo.Cars
	kv   repo.KV
}

// NewInitDB creates an InitDBUseCase instance which connects to the
// database using the p pool and migrates the tables of the cars and
// kv repositories.
func NewInitDB(p repo.Pool, cars repo.Cars, kv repo.KV) *InitDBUseCase {
	return &InitDBUseCase{pool: p, cars: cars, kv: kv}
}

// InitProd creates the tables (if they do not exist) without adding
// any vehicles. Existing rows are kept intact.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, nil)
}

// InitDev creates the tables (if they do not exist) and upserts the
// seed vehicles, so repeating it restores the seed contents without
// touching other vehicles or stored carts.
// All operations are performed in one transaction.
func (iduc *InitDBUseCase) InitDev(
	ctx context.Context, seed []model.Vehicle,
) error {
	return iduc.initDB(ctx, seed)
}

func (iduc *InitDBUseCase) initDB(
	ctx context.Context, seed []model.Vehicle,
) error {
	var st Status
	err := iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cq, kq := iduc.cars.Tx(tx), iduc.kv.Tx(tx)
			if err := cq.Migrate(ctx); err != nil {
				return fmt.Errorf("migrating vehicles: %w", err)
			}
			if err := kq.Migrate(ctx); err != nil {
				return fmt.Errorf("migrating kv entries: %w", err)
			}
			if len(seed) > 0 {
				if err := cq.Lock(ctx); err != nil {
					return err
				}
			}
			for i := range seed {
				if err := cq.Upsert(ctx, &seed[i]); err != nil {
					return fmt.Errorf("upserting seed #%d: %w", i, err)
				}
			}
			var err error
			st, err = count(ctx, cq, kq)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	log.Info(
		ctx, "database is initialized",
		slog.Int("seeded", len(seed)),
		slog.Int64("vehicles", st.Vehicles),
		slog.Int64("entries", st.Entries),
	)
	return nil
}

// Status reports the number of rows of the initialized tables.
type Status struct {
	Vehicles int64 `json:"vehicles"`
	Entries  int64 `json:"entries"`
}

// Status counts the stored vehicles and key/value entries (e.g., the
// persisted carts). The tables must have been created by InitProd or
// InitDev beforehand.
func (iduc *InitDBUseCase) Status(ctx context.Context) (st Status, err error) {
	err = iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		st, err = count(ctx, iduc.cars.Conn(c), iduc.kv.Conn(c))
		return err
	})
	if err != nil {
		return Status{}, fmt.Errorf("reading database status: %w", err)
	}
	return st, nil
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

func count(ctx context.Context, cars, kv counter) (st Status, err error) {
	if st.Vehicles, err = cars.Count(ctx); err != nil {
		return Status{}, err
	}
	if st.Entries, err = kv.Count(ctx); err != nil {
		return Status{}, err
	}
	return st, nil
}
