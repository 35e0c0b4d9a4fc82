// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/kvrp"
	"github.com/momeni/autorent/pkg/adapter/inventory/apiinv"
	"github.com/momeni/autorent/pkg/adapter/inventory/dbinv"
	"github.com/momeni/autorent/pkg/adapter/inventory/static"
	"github.com/momeni/autorent/pkg/adapter/kv/dbkv"
	"github.com/momeni/autorent/pkg/adapter/kv/memkv"
	"github.com/momeni/autorent/pkg/adapter/kv/rediskv"
	"github.com/momeni/autorent/pkg/adapter/restapi/adminapi"
	"github.com/momeni/autorent/pkg/adapter/restful/gin"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/momeni/autorent/pkg/core/repo"
	"github.com/momeni/autorent/pkg/core/usecase/adminuc"
	"github.com/momeni/autorent/pkg/core/usecase/cartuc"
	"github.com/momeni/autorent/pkg/core/usecase/cataloguc"
)

// Components holds the adapters which are instantiated based on a
// Config. Pool and AdminAPI are nil when they are not configured.
type Components struct {
	Pool      *postgres.Pool
	Store     repo.KVStore
	Sessions  repo.SessionStore
	Inventory repo.Inventory
	AdminAPI  *adminapi.Client

	closers []func() error
}

// Close releases the database pool and redis client (if any).
func (cs *Components) Close() error {
	var errs []error
	for i := len(cs.closers) - 1; i >= 0; i-- {
		errs = append(errs, cs.closers[i]())
	}
	cs.closers = nil
	return errors.Join(errs...)
}

// Build connects to the configured storage backends and instantiates
// the inventory source. In case of errors, the partially created
// components are closed.
func (c *Config) Build(ctx context.Context) (cs *Components, err error) {
	built := &Components{}
	defer func() {
		if err != nil {
			_ = built.Close()
			cs = nil
		}
	}()
	cs = built
	if c.NeedsDatabase() {
		p, err := c.Database.ConnectionPool(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating connection pool: %w", err)
		}
		cs.Pool = p
		cs.closers = append(cs.closers, p.Close)
	}
	switch c.Storage.Driver {
	case DriverPostgres:
		cs.Store = dbkv.New(cs.Pool, kvrp.New())
	default:
		cs.Store = memkv.New()
	}
	switch c.Sessions.Driver {
	case DriverRedis:
		rdb, err := rediskv.Dial(ctx, c.Sessions.RedisURL)
		if err != nil {
			return nil, err
		}
		cs.closers = append(cs.closers, rdb.Close)
		cs.Sessions = rediskv.New(rdb, c.Sessions.Prefix)
	default:
		cs.Sessions = memkv.New()
	}
	if c.AdminAPI.BaseURL != "" {
		cs.AdminAPI, err = adminapi.New(
			c.AdminAPI.BaseURL, cs.Store,
			adminapi.WithTimeout(time.Duration(*c.AdminAPI.Timeout)),
		)
		if err != nil {
			return nil, fmt.Errorf("creating admin API client: %w", err)
		}
	}
	cs.Inventory, err = c.newInventory(cs)
	if err != nil {
		return nil, fmt.Errorf("creating %s inventory: %w", c.Inventory.Source, err)
	}
	log.Info(
		ctx, "components are ready",
		slog.String("storage", c.Storage.Driver),
		slog.String("sessions", c.Sessions.Driver),
		slog.String("inventory", c.Inventory.Source),
	)
	return cs, nil
}

func (c *Config) newInventory(cs *Components) (repo.Inventory, error) {
	switch c.Inventory.Source {
	case SourcePostgres:
		return dbinv.New(cs.Pool, carsrp.New()), nil
	case SourceAPI:
		return apiinv.New(cs.AdminAPI, c.Inventory.PageLimit), nil
	}
	if c.Inventory.File != "" {
		return static.Load(c.Inventory.File)
	}
	return static.Seeded(), nil
}

// NewCatalogUseCase instantiates a new catalog use case based on the
// settings in the c struct.
func (c *Config) NewCatalogUseCase(
	inv repo.Inventory, sessions repo.SessionStore,
) (*cataloguc.UseCase, error) {
	cc := c.Usecases.Catalog
	opts := []cataloguc.Option{
		cataloguc.WithSessionStore(sessions),
		cataloguc.WithPreferencesTTL(time.Duration(*c.Sessions.TTL)),
	}
	if cc.GridPageSize != nil {
		opts = append(opts, cataloguc.WithGridPageSize(*cc.GridPageSize))
	}
	if cc.ListPageSize != nil {
		opts = append(opts, cataloguc.WithListPageSize(*cc.ListPageSize))
	}
	if cc.MaxVisiblePages != nil {
		opts = append(opts, cataloguc.WithMaxVisiblePages(*cc.MaxVisiblePages))
	}
	if cc.CompactVisiblePages != nil {
		opts = append(opts, cataloguc.WithCompactVisiblePages(
			*cc.CompactVisiblePages,
		))
	}
	if cc.Collation != "" {
		opts = append(opts, cataloguc.WithCollationLanguage(cc.Collation))
	}
	return cataloguc.New(inv, opts...)
}

// NewCartUseCase instantiates a new cart use case. Checked out carts
// are submitted as bookings through the admin API, if it is configured.
func (c *Config) NewCartUseCase(
	inv repo.Inventory, store repo.KVStore, api *adminapi.Client,
) (*cartuc.UseCase, error) {
	var opts []cartuc.Option
	if c.Usecases.Cart.MaxDays != nil {
		opts = append(opts, cartuc.WithMaxDays(*c.Usecases.Cart.MaxDays))
	}
	if api != nil {
		opts = append(opts, cartuc.WithBookingSubmitter(api))
	}
	return cartuc.New(inv, store, opts...)
}

// NewAdminUseCase instantiates the back-office use case, or returns
// nil if the admin API is not configured.
func (c *Config) NewAdminUseCase(api *adminapi.Client) *adminuc.UseCase {
	if api == nil {
		return nil
	}
	return adminuc.New(api)
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}
