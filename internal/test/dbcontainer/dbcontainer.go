// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages.
// This packages facilitates creation of a temporary postgres:16
// podman container and connecting to it, using a *gormdb.Pool
// connection pool.
// It may be used in all integration-level test suites which require
// a real PostgreSQL DBMS server. Tests which may run with an embedded
// database should use the NewSQLite function instead.
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/schemarp"
	"github.com/momeni/clean-parking/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Available reports if a container engine is configured by the
// DOCKER_HOST environment variable.
func Available() bool {
	return os.Getenv("DOCKER_HOST") != ""
}

// New creates and starts up a postgres podman container.
// The podman.service needs to be started and the DOCKER_HOST
// environment variable needs to be initialized beforehand like
// DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
// in order to be identified by this function properly.
// The ctx will be used during the container start up and shutdown,
// while the timeout will be considered only during the start up phase.
func New(ctx context.Context, timeout time.Duration, t *testing.T) (
	pg *sqltestutil.PostgresContainer,
	pool *gormdb.Pool,
	dfrs []func(),
	ok bool,
) {
	ctx2, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	dbmsVer := "16"
	pg, err := sqltestutil.StartPostgresContainer(ctx2, dbmsVer)
	ok = assert.NoError(t, err, "failed to set up a test database")
	if !ok {
		return
	}
	dfrs = append(dfrs, func() {
		err := pg.Shutdown(ctx)
		assert.NoError(t, err, "failed to shutdown test database")
	})
	d, err := gormdb.Dialector(gormdb.DriverPostgres, pg.ConnectionString())
	ok = assert.NoError(t, err)
	if !ok {
		return
	}
	for pool == nil {
		pool, err = gormdb.NewPool(ctx2, d, 4)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == "57P03" {
			continue // the database system is starting up
		}
		var netErr net.Error
		if ctx2.Err() == nil && errors.As(err, &netErr) {
			continue // tolerate network errors until a timeout
		}
		ok = assert.NoError(t, err, "cannot connect to test database")
		if !ok {
			return
		}
	}
	dfrs = append(dfrs, func() {
		err := pool.Close()
		assert.NoError(t, err, "failed to close the connections pool")
	})
	return
}

// NewSQLite opens a connection pool to a fresh SQLite database file
// in a temporary directory of t and creates the parking schema in it.
// The pool is closed when t finishes.
func NewSQLite(ctx context.Context, t *testing.T) *gormdb.Pool {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parkings.db")
	d, err := gormdb.Dialector(gormdb.DriverSQLite, path)
	require.NoError(t, err)
	pool, err := gormdb.NewPool(ctx, d, 1)
	require.NoError(t, err, "cannot open the test database")
	t.Cleanup(func() {
		assert.NoError(t, pool.Close(), "failed to close the pool")
	})
	require.NoError(t, CreateSchema(ctx, pool))
	return pool
}

// CreateSchema creates the parking tables using the pool connections.
func CreateSchema(ctx context.Context, pool *gormdb.Pool) error {
	return pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return schemarp.New().Create(ctx, tx)
		})
	})
}
