// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schemarp realizes the repo.Schema interface, creating the
// client, parking, and client_parking tables with GORM AutoMigrate.
package schemarp

import (
	"context"
	"fmt"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/tables"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

// Create creates the missing tables, columns, indices, and
// constraints in the tx transaction. Existing rows are kept intact.
func (sr *Repo) Create(ctx context.Context, tx repo.Tx) error {
	tt := tx.(*gormdb.Tx)
	if err := tt.GORM(ctx).AutoMigrate(tables.All()...); err != nil {
		return fmt.Errorf("auto-migrating tables: %w", err)
	}
	return nil
}
