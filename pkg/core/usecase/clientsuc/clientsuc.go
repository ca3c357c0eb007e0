// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsuc contains the clients UseCase which supports the
// registration and lookup of parking clients.
package clientsuc

import (
	"context"
	"log/slog"

	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

// UseCase represents a clients use case. It holds a database
// connection pool and the clients repository instance.
type UseCase struct {
	pool      repo.Pool
	clientsrp repo.Clients
}

// New instantiates a clients use case.
func New(p repo.Pool, c repo.Clients) *UseCase {
	return &UseCase{pool: p, clientsrp: c}
}

// List returns all registered clients, ordered by their IDs.
func (clients *UseCase) List(ctx context.Context) (cs []model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cs, err = clients.clientsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		cs = nil
	}
	return
}

// Get returns the id client or a not-found error.
func (clients *UseCase) Get(ctx context.Context, id int64) (cl *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cl, err = clients.clientsrp.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		cl = nil
	}
	return
}

// Create registers the cl client. Its name and surname are mandatory
// while its credit card and car number may be nil. The ID of cl is
// ignored and the stored client is returned with its assigned ID.
func (clients *UseCase) Create(ctx context.Context, cl *model.Client) (created *model.Client, err error) {
	if err = cl.Validate(); err != nil {
		return nil, cerr.Validation(err)
	}
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		created, err = clients.clientsrp.Conn(c).Create(ctx, cl)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "client registered", slog.Int64("client_id", created.ID))
	return created, nil
}
