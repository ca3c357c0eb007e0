// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sessionsrp realizes the repo.Sessions interface, storing
// the parking sessions in the client_parking table.
package sessionsrp

import (
	"context"
	"time"

	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*gormdb.Conn
}

func (sessions *Repo) Conn(c repo.Conn) repo.SessionsConnQueryer {
	cc := c.(*gormdb.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Active(ctx context.Context, clientID, parkingID int64) (*model.ClientParking, error) {
	return Active(ctx, cq.Conn, clientID, parkingID)
}

func (cq connQueryer) CountActive(ctx context.Context, parkingID int64) (int64, error) {
	return CountActive(ctx, cq.Conn, parkingID)
}

type txQueryer struct {
	*gormdb.Tx
}

func (sessions *Repo) Tx(tx repo.Tx) repo.SessionsTxQueryer {
	tt := tx.(*gormdb.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Active(ctx context.Context, clientID, parkingID int64) (*model.ClientParking, error) {
	return Active(ctx, tq.Tx, clientID, parkingID)
}

func (tq txQueryer) CountActive(ctx context.Context, parkingID int64) (int64, error) {
	return CountActive(ctx, tq.Tx, parkingID)
}

func (tq txQueryer) Open(ctx context.Context, cp *model.ClientParking) (*model.ClientParking, error) {
	return Open(ctx, tq.Tx, cp)
}

func (tq txQueryer) Close(ctx context.Context, id int64, timeOut time.Time) (bool, error) {
	return Close(ctx, tq.Tx, id, timeOut)
}
