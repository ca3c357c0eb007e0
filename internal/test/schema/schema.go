// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema is a database schema verifier which can be used for
// testing purposes. It checks the tables, columns, and indices which
// are expected after a database initialization, regardless of the
// DBMS (PostgreSQL or SQLite) which hosts them. The schema contents
// (i.e., existing rows) are not checked.
package schema

import (
	"context"
	"testing"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/tables"
	"github.com/momeni/clean-parking/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = map[any][]string{
	&tables.Client{}: {
		"id", "name", "surname", "credit_card", "car_number",
	},
	&tables.Parking{}: {
		"id", "address", "opened", "count_places",
		"count_available_places",
	},
	&tables.Session{}: {
		"id", "client_id", "parking_id", "time_in", "time_out",
	},
}

// Verify verifies the database schema using a connection of pool.
// The t argument is marked as failed if the schema was invalid.
func Verify(ctx context.Context, t *testing.T, pool *gormdb.Pool) {
	t.Helper()
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m := c.(*gormdb.Conn).GORM(ctx).Migrator()
		for tbl, cols := range columns {
			if !assert.True(t, m.HasTable(tbl), "missing table %T", tbl) {
				continue
			}
			for _, col := range cols {
				assert.True(t, m.HasColumn(tbl, col),
					"missing column %T.%s", tbl, col,
				)
			}
		}
		assert.True(t, m.HasIndex(
			&tables.Session{}, "uniq_active_client_parking",
		), "missing active sessions unique index")
		return nil
	})
	require.NoError(t, err)
}
