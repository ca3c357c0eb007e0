// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp_test

import (
	"context"
	"testing"
	"time"

	"github.com/momeni/clean-parking/internal/test/dbcontainer"
	"github.com/momeni/clean-parking/internal/test/schema"
	"github.com/stretchr/testify/require"
)

func TestCreateSQLite(t *testing.T) {
	ctx := context.Background()
	pool := dbcontainer.NewSQLite(ctx, t)
	schema.Verify(ctx, t, pool)

	// creating an existing schema is a no-op
	require.NoError(t, dbcontainer.CreateSchema(ctx, pool))
	schema.Verify(ctx, t, pool)
}

func TestCreatePostgres(t *testing.T) {
	if !dbcontainer.Available() {
		t.Skip("DOCKER_HOST is not set")
	}
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 2*time.Minute, t)
	defer func() {
		for i := len(dfrs) - 1; i >= 0; i-- {
			dfrs[i]()
		}
	}()
	if !ok {
		return
	}
	require.NoError(t, dbcontainer.CreateSchema(ctx, pool))
	schema.Verify(ctx, t, pool)
}
