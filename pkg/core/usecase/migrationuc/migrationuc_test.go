// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/autorent/internal/test/dbcontainer"
	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/kvrp"
	"github.com/momeni/autorent/pkg/adapter/inventory/dbinv"
	"github.com/momeni/autorent/pkg/adapter/inventory/static"
	"github.com/momeni/autorent/pkg/adapter/kv/dbkv"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/momeni/autorent/pkg/core/usecase/migrationuc"
	"github.com/stretchr/testify/suite"
)

type InitDBTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool

	cars *carsrp.Repo
	kv   *kvrp.Repo
	uc   *migrationuc.InitDBUseCase
}

func TestInitDBTestSuite(t *testing.T) {
	ctx := context.Background()
	pool, ok := dbcontainer.New(ctx, 60*time.Second, t)
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &InitDBTestSuite{Ctx: ctx, Pool: pool})
}

func (idts *InitDBTestSuite) SetupSuite() {
	idts.cars, idts.kv = carsrp.New(), kvrp.New()
	idts.uc = migrationuc.NewInitDB(idts.Pool, idts.cars, idts.kv)
	idts.Require().NoError(idts.uc.InitProd(idts.Ctx))
}

func (idts *InitDBTestSuite) TestInitDevIsRepeatable() {
	inv := dbinv.New(idts.Pool, idts.cars)
	seed := static.Seed()
	idts.Require().NoError(idts.uc.InitDev(idts.Ctx, seed))

	extra := model.Vehicle{
		ID: "extra", Brand: "Lada", Model: "Niva", Year: 2020, Seats: 4,
		Transmission: model.TransmissionManual,
		FuelType:     model.FuelTypePetrol,
		PricePerDay:  900,
	}
	err := idts.Pool.Conn(idts.Ctx, func(ctx context.Context, c repo.Conn) error {
		return idts.cars.Conn(c).Upsert(ctx, &extra)
	})
	idts.Require().NoError(err)

	changed := static.Seed()
	changed[0].PricePerDay = 1
	idts.Require().NoError(idts.uc.InitDev(idts.Ctx, changed))
	idts.Require().NoError(idts.uc.InitDev(idts.Ctx, seed))

	vs, err := inv.Vehicles(idts.Ctx)
	idts.Require().NoError(err)
	idts.Require().Len(vs, len(seed)+1)
	idts.Equal(seed, vs[:len(seed)], "seed order and contents are kept")
	idts.Equal(extra.ID, vs[len(seed)].ID, "other rows are kept")

	st, err := idts.uc.Status(idts.Ctx)
	idts.Require().NoError(err)
	idts.GreaterOrEqual(st.Vehicles, int64(len(seed)+1))

	_, err = inv.Vehicle(idts.Ctx, "missing")
	idts.ErrorIs(err, repo.ErrVehicleNotFound)
}

func (idts *InitDBTestSuite) TestUpsertRejectsInvalidVehicles() {
	err := idts.Pool.Conn(idts.Ctx, func(ctx context.Context, c repo.Conn) error {
		return idts.cars.Conn(c).Upsert(ctx, &model.Vehicle{ID: "bad"})
	})
	idts.Error(err)
}

func (idts *InitDBTestSuite) TestDeleteVehicle() {
	v := static.Seed()[2]
	v.ID = "to-delete"
	var deleted, again bool
	err := idts.Pool.Conn(idts.Ctx, func(ctx context.Context, c repo.Conn) error {
		cq := idts.cars.Conn(c)
		if err := cq.Upsert(ctx, &v); err != nil {
			return err
		}
		var err error
		if deleted, err = cq.Delete(ctx, v.ID); err != nil {
			return err
		}
		again, err = cq.Delete(ctx, v.ID)
		return err
	})
	idts.Require().NoError(err)
	idts.True(deleted)
	idts.False(again)
}

func (idts *InitDBTestSuite) TestKVStore() {
	s := dbkv.New(idts.Pool, idts.kv)
	_, found, err := s.Get(idts.Ctx, "cart:x")
	idts.Require().NoError(err)
	idts.False(found)

	before, err := idts.uc.Status(idts.Ctx)
	idts.Require().NoError(err)
	idts.Require().NoError(s.Set(idts.Ctx, "cart:x", "[]"))
	after, err := idts.uc.Status(idts.Ctx)
	idts.Require().NoError(err)
	idts.Equal(before.Entries+1, after.Entries)
	idts.Require().NoError(s.Set(idts.Ctx, "cart:x", `[{"days":1}]`))
	v, found, err := s.Get(idts.Ctx, "cart:x")
	idts.Require().NoError(err)
	idts.True(found)
	idts.Equal(`[{"days":1}]`, v)

	idts.Require().NoError(s.Delete(idts.Ctx, "cart:x"))
	idts.Require().NoError(s.Delete(idts.Ctx, "cart:x"))
	_, found, err = s.Get(idts.Ctx, "cart:x")
	idts.Require().NoError(err)
	idts.False(found)
}
