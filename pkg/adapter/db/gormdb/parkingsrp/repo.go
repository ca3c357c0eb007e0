// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package parkingsrp realizes the repo.Parkings interface, storing the
// parking facilities and their capacity counters in the parking table.
package parkingsrp

import (
	"context"

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

func (parkings *Repo) Conn(c repo.Conn) repo.ParkingsConnQueryer {
	cc := c.(*gormdb.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) List(ctx context.Context) ([]model.Parking, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Get(ctx context.Context, id int64) (*model.Parking, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) Create(ctx context.Context, p *model.Parking) (*model.Parking, error) {
	return Create(ctx, cq.Conn, p)
}

func (cq connQueryer) SetOpened(ctx context.Context, id int64, opened bool) (*model.Parking, error) {
	return SetOpened(ctx, cq.Conn, id, opened)
}

type txQueryer struct {
	*gormdb.Tx
}

func (parkings *Repo) Tx(tx repo.Tx) repo.ParkingsTxQueryer {
	tt := tx.(*gormdb.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) List(ctx context.Context) ([]model.Parking, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Get(ctx context.Context, id int64) (*model.Parking, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, p *model.Parking) (*model.Parking, error) {
	return Create(ctx, tq.Tx, p)
}

func (tq txQueryer) SetOpened(ctx context.Context, id int64, opened bool) (*model.Parking, error) {
	return SetOpened(ctx, tq.Tx, id, opened)
}

func (tq txQueryer) TakePlace(ctx context.Context, id int64) (bool, error) {
	return TakePlace(ctx, tq.Tx, id)
}

func (tq txQueryer) ReleasePlace(ctx context.Context, id int64) (bool, error) {
	return ReleasePlace(ctx, tq.Tx, id)
}
