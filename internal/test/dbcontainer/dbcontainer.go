// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer starts a disposable postgres:16 container for
// the integration test suites and connects a *postgres.Pool to it.
// The podman.service needs to be started and the DOCKER_HOST variable
// has to point to its socket beforehand, e.g.,
//
//	DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
//
// Suites which cannot reach a container runtime are reported as
// failed by the returned ok flag.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/autorent/pkg/adapter/db/postgres"
	"github.com/stretchr/testify/assert"
)

// DBMSVersion is the postgres image tag which is started by New.
const DBMSVersion = "16"

// New starts a postgres container and connects to it. The timeout
// bounds the start up phase only. Shutting down the container and
// closing the pool are registered as t cleanups, so callers do not
// need to release anything explicitly.
func New(ctx context.Context, timeout time.Duration, t *testing.T) (
	pool *postgres.Pool, ok bool,
) {
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pg, err := sqltestutil.StartPostgresContainer(ctx2, DBMSVersion)
	if !assert.NoError(t, err, "failed to set up a test database") {
		return nil, false
	}
	t.Cleanup(func() {
		assert.NoError(t, pg.Shutdown(ctx), "failed to shutdown test db")
	})
	pool, err = connect(ctx2, pg.ConnectionString())
	if !assert.NoError(t, err, "cannot connect to test database") {
		return nil, false
	}
	t.Cleanup(func() {
		assert.NoError(t, pool.Close(), "failed to close the pool")
	})
	return pool, true
}

// connect retries while the DBMS is starting up or its port is not
// yet reachable, until ctx expires.
func connect(ctx context.Context, u string) (*postgres.Pool, error) {
	for {
		pool, err := postgres.NewPool(ctx, u)
		if err == nil {
			return pool, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == "57P03" {
			continue // the database system is starting up
		}
		var netErr net.Error
		if ctx.Err() == nil && errors.As(err, &netErr) {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		return nil, err
	}
}
