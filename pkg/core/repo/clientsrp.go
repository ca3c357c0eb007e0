// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/clean-parking/pkg/core/model"
)

type ClientsConnQueryer interface {
	ClientsQueryer
}

type ClientsTxQueryer interface {
	ClientsQueryer
}

type ClientsQueryer interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, c *model.Client) (*model.Client, error)
}

type Clients interface {
	Conn(Conn) ClientsConnQueryer
	Tx(Tx) ClientsTxQueryer
}
