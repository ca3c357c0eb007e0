// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gormdb realizes the repo.Pool, repo.Conn, and repo.Tx
// interfaces using the GORM library. Both PostgreSQL and SQLite
// dialects are supported; the repository packages (named like
// clientsrp) are written against the GORM API and so can work with
// either of them.
package gormdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/clean-parking/pkg/core/repo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Pool struct {
	*gorm.DB
}

// NewPool opens a connections pool using the d dialector and tests
// it by acquiring one connection. At most maxOpenConns connections
// will be opened concurrently, while zero means unlimited.
// GORM logs are written through the default slog logger.
func NewPool(
	ctx context.Context, d gorm.Dialector, maxOpenConns int,
) (*Pool, error) {
	gdb, err := gorm.Open(d, &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	gdb = gdb.Session(&gorm.Session{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
				// Set to false in order to log with replaced vars
				ParameterizedQueries: true,
			}),
	})
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("gdb.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

func (p *Pool) Ping(ctx context.Context) error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
