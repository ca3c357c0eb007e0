// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package parkingsuc contains the parkings UseCase which supports
// the registration, lookup, and opening/closing of parking facilities.
package parkingsuc

import (
	"context"
	"log/slog"

	"github.com/momeni/clean-parking/pkg/core/cerr"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

// UseCase represents a parkings use case. It holds a database
// connection pool and the parkings repository instance.
type UseCase struct {
	pool       repo.Pool
	parkingsrp repo.Parkings
}

// New instantiates a parkings use case.
func New(p repo.Pool, pr repo.Parkings) *UseCase {
	return &UseCase{pool: p, parkingsrp: pr}
}

// Create registers a parking at the given address with count places.
// The new parking is opened and all of its places are available.
func (parkings *UseCase) Create(ctx context.Context, address string, count int) (p *model.Parking, err error) {
	p, err = model.NewParking(address, count)
	if err != nil {
		return nil, cerr.Validation(err)
	}
	err = parkings.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = parkings.parkingsrp.Conn(c).Create(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "parking registered",
		slog.Int64("parking_id", p.ID),
		slog.Int("count_places", p.CountPlaces),
	)
	return p, nil
}

func (parkings *UseCase) List(ctx context.Context) (ps []model.Parking, err error) {
	err = parkings.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ps, err = parkings.parkingsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		ps = nil
	}
	return
}

func (parkings *UseCase) Get(ctx context.Context, id int64) (p *model.Parking, err error) {
	err = parkings.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = parkings.parkingsrp.Conn(c).Get(ctx, id)
		return err
	})
	if err != nil {
		p = nil
	}
	return
}

// SetOpened opens or closes the id parking. A closed parking rejects
// new entries, but its active sessions may still exit.
func (parkings *UseCase) SetOpened(ctx context.Context, id int64, opened bool) (p *model.Parking, err error) {
	err = parkings.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = parkings.parkingsrp.Conn(c).SetOpened(ctx, id, opened)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "parking opened state changed",
		slog.Int64("parking_id", id), slog.Bool("opened", opened),
	)
	return p, nil
}
