// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrp realizes the repo.Clients interface, storing the
// registered clients in the client table.
package clientsrp

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

func (clients *Repo) Conn(c repo.Conn) repo.ClientsConnQueryer {
	cc := c.(*gormdb.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Get(ctx context.Context, id int64) (*model.Client, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	return Create(ctx, cq.Conn, c)
}

type txQueryer struct {
	*gormdb.Tx
}

func (clients *Repo) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	tt := tx.(*gormdb.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Get(ctx context.Context, id int64) (*model.Client, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	return Create(ctx, tq.Tx, c)
}
