// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsrp

import (
	"context"
	"fmt"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/tables"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
)

func List[Q gormdb.Queryer](ctx context.Context, q Q) ([]model.Client, error) {
	var gcs []tables.Client
	if err := q.GORM(ctx).Order("id").Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cs := make([]model.Client, 0, len(gcs))
	for i := range gcs {
		cs = append(cs, *gcs[i].Model())
	}
	return cs, nil
}

func Get[Q gormdb.Queryer](ctx context.Context, q Q, id int64) (*model.Client, error) {
	gc := &tables.Client{}
	err := q.GORM(ctx).Take(gc, "id = ?", id).Error
	switch {
	case gormdb.IsNotFound(err):
		return nil, cerr.NotFound(model.ErrClientNotFound)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model(), nil
}

func Create[Q gormdb.Queryer](ctx context.Context, q Q, c *model.Client) (*model.Client, error) {
	gc := tables.FromClient(c)
	gc.ID = 0
	if err := q.GORM(ctx).Create(gc).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gc.Model(), nil
}
