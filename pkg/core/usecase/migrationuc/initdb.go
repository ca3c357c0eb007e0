// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc contains the database initialization use case.
// It creates the tables of clients, parkings, and their sessions and
// may fill them with a few development suitable records.
package migrationuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/momeni/clean-parking/pkg/core/model"
	"github.com/momeni/clean-parking/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case.
type InitDBUseCase struct {
	pool       repo.Pool
	schemaRepo repo.Schema
	clientsrp  repo.Clients
	parkingsrp repo.Parkings
}

// NewInitDB instantiates an InitDBUseCase. The clients and parkings
// repositories are only used by InitDev.
func NewInitDB(
	p repo.Pool, s repo.Schema, c repo.Clients, pr repo.Parkings,
) *InitDBUseCase {
	return &InitDBUseCase{
		pool:       p,
		schemaRepo: s,
		clientsrp:  c,
		parkingsrp: pr,
	}
}

// InitProd creates the missing tables, leaving the existing rows
// intact. It may be called on every start up.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	return iduc.initDB(ctx, nil)
}

// InitDev creates the missing tables and inserts a client with a
// credit card and a parking with ten places, so the enter and exit
// APIs may be tried right away.
func (iduc *InitDBUseCase) InitDev(ctx context.Context) error {
	return iduc.initDB(ctx, func(ctx context.Context, tx repo.Tx) error {
		card, car := "1111222233334444", "A111AA"
		cl, err := iduc.clientsrp.Tx(tx).Create(ctx, &model.Client{
			Name:       "Ivan",
			Surname:    "Petrov",
			CreditCard: &card,
			CarNumber:  &car,
		})
		if err != nil {
			return fmt.Errorf("creating dev client: %w", err)
		}
		p, err := model.NewParking("Lenina 1", 10)
		if err != nil {
			return err
		}
		p, err = iduc.parkingsrp.Tx(tx).Create(ctx, p)
		if err != nil {
			return fmt.Errorf("creating dev parking: %w", err)
		}
		log.Info(ctx, "dev data inserted",
			slog.Int64("client_id", cl.ID),
			slog.Int64("parking_id", p.ID),
		)
		return nil
	})
}

func (iduc *InitDBUseCase) initDB(
	ctx context.Context,
	fill func(ctx context.Context, tx repo.Tx) error,
) error {
	err := iduc.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := iduc.schemaRepo.Create(ctx, tx); err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
			if fill == nil {
				return nil
			}
			return fill(ctx, tx)
		})
	})
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	return nil
}
