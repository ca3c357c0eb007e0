// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/tables"
	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/model"
)

func Active[Q gormdb.Queryer](ctx context.Context, q Q, clientID, parkingID int64) (*model.ClientParking, error) {
	var gss []tables.Session
	err := q.GORM(ctx).Where(
		"client_id = ? AND parking_id = ? AND time_out IS NULL",
		clientID, parkingID,
	).Limit(1).Find(&gss).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if len(gss) == 0 {
		return nil, nil
	}
	return gss[0].Model(), nil
}

func CountActive[Q gormdb.Queryer](ctx context.Context, q Q, parkingID int64) (int64, error) {
	var n int64
	err := q.GORM(ctx).Model(&tables.Session{}).Where(
		"parking_id = ? AND time_out IS NULL", parkingID,
	).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// Open inserts cp as an active session. The partial unique index on
// the active sessions turns a concurrent duplicate entry into the
// conflict error which would be reported by the Active precondition.
func Open(ctx context.Context, tx *gormdb.Tx, cp *model.ClientParking) (*model.ClientParking, error) {
	gs := tables.FromSession(cp)
	gs.ID = 0
	gs.TimeOut = nil
	err := tx.GORM(ctx).Create(gs).Error
	switch {
	case gormdb.IsDuplicatedKey(err):
		return nil, cerr.Conflict(model.ErrSessionActive)
	case err != nil:
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gs.Model(), nil
}

func Close(ctx context.Context, tx *gormdb.Tx, id int64, timeOut time.Time) (bool, error) {
	gdb := tx.GORM(ctx).Model(&tables.Session{}).Where(
		"id = ? AND time_out IS NULL", id,
	).UpdateColumn("time_out", timeOut.UTC())
	if err := gdb.Error; err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	return gdb.RowsAffected == 1, nil
}
