// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package parkingsrp

import (
	"context"
	"fmt"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/tables"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
	"gorm.io/gorm"
)

func List[Q gormdb.Queryer](ctx context.Context, q Q) ([]model.Parking, error) {
	var gps []tables.Parking
	if err := q.GORM(ctx).Order("id").Find(&gps).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	ps := make([]model.Parking, 0, len(gps))
	for i := range gps {
		ps = append(ps, *gps[i].Model())
	}
	return ps, nil
}

func Get[Q gormdb.Queryer](ctx context.Context, q Q, id int64) (*model.Parking, error) {
	gp := &tables.Parking{}
	err := q.GORM(ctx).Take(gp, "id = ?", id).Error
	switch {
	case gormdb.IsNotFound(err):
		return nil, cerr.NotFound(model.ErrParkingNotFound)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gp.Model(), nil
}

func Create[Q gormdb.Queryer](ctx context.Context, q Q, p *model.Parking) (*model.Parking, error) {
	gp := tables.FromParking(p)
	gp.ID = 0
	if err := q.GORM(ctx).Create(gp).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gp.Model(), nil
}

func SetOpened[Q gormdb.Queryer](ctx context.Context, q Q, id int64, opened bool) (*model.Parking, error) {
	gdb := q.GORM(ctx).Model(&tables.Parking{}).Where(
		"id = ?", id,
	).Update("opened", opened)
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	if gdb.RowsAffected != 1 {
		return nil, cerr.NotFound(model.ErrParkingNotFound)
	}
	return Get(ctx, q, id)
}

// TakePlace decrements the available places counter only if it is
// positive. The condition is evaluated by the DBMS on the locked row,
// so two concurrent entries may not both take the last place.
func TakePlace(ctx context.Context, tx *gormdb.Tx, id int64) (bool, error) {
	gdb := tx.GORM(ctx).Model(&tables.Parking{}).Where(
		"id = ? AND count_available_places > 0", id,
	).UpdateColumn(
		"count_available_places", gorm.Expr("count_available_places - 1"),
	)
	if err := gdb.Error; err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	return gdb.RowsAffected == 1, nil
}

// ReleasePlace increments the available places counter only if it is
// below the parking capacity.
func ReleasePlace(ctx context.Context, tx *gormdb.Tx, id int64) (bool, error) {
	gdb := tx.GORM(ctx).Model(&tables.Parking{}).Where(
		"id = ? AND count_available_places < count_places", id,
	).UpdateColumn(
		"count_available_places", gorm.Expr("count_available_places + 1"),
	)
	if err := gdb.Error; err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	return gdb.RowsAffected == 1, nil
}
