// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the parkweb to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so they
// are validated again by the relevant end-component such as a UseCase.
//
// Environment variables may be used in the configuration file as
// ${NAME} and are expanded before parsing. A .env file in the working
// directory is loaded into the environment beforehand (if it exists),
// and the DATABASE_URL variable overrides the database settings.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/momeni/clean-parking/pkg/adapter/config/settings"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/clientsrp"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/parkingsrp"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/schemarp"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb/sessionsrp"
	"github.com/momeni/clean-parking/pkg/adapter/metrics"
	"github.com/momeni/clean-parking/pkg/adapter/payment/stubpay"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin"
	"github.com/momeni/clean-parking/pkg/core/repo"
	"github.com/momeni/clean-parking/pkg/core/usecase/clientsuc"
	"github.com/momeni/clean-parking/pkg/core/usecase/migrationuc"
	"github.com/momeni/clean-parking/pkg/core/usecase/parkingsuc"
	"github.com/momeni/clean-parking/pkg/core/usecase/sessionsuc"
	"gopkg.in/yaml.v3"
)

// DatabaseURLEnv is the environment variable which overrides the
// database DSN (and the driver, for postgres:// URLs).
const DatabaseURLEnv = "DATABASE_URL"

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // Database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Log      Log      // Default slog logger settings
	Metrics  Metrics  // Prometheus metrics exposition settings
	Usecases Usecases // Supported use cases configuration settings
}

// Database contains the database connection settings.
type Database struct {
	// Driver is either postgres or sqlite (default).
	Driver string
	// DSN is a PostgreSQL connection URL or keywords/values string,
	// or the SQLite database file path. It defaults to parkings.db.
	DSN string `yaml:"dsn"`
	// MaxOpenConns limits the number of open connections. It defaults
	// to 1 for SQLite (which has a database-wide write lock) and 10
	// for PostgreSQL.
	MaxOpenConns *int `yaml:"max-open-conns"`
}

// Gin contains the gin.Engine instantiation settings.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// Log contains the default slog logger settings.
type Log struct {
	Level  string // debug, info (default), warn, or error
	Format string // json (default) or text
}

// Metrics contains the Prometheus exposition settings.
type Metrics struct {
	Enabled *bool
	Path    string // defaults to /metrics
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Sessions Sessions // parking sessions related settings
}

// Sessions contains the configuration settings of the sessions use
// case. Missing items take their defaults from the use case itself.
type Sessions struct {
	HourlyRate    *float64           `yaml:"hourly-rate"`
	Currency      *string            `yaml:"currency"`
	BillingPeriod *settings.Duration `yaml:"billing-period"`
}

// Load loads the .env file (if any), reads the path configuration
// file, and parses it by the Parse function.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse expands the environment variables in data, unmarshals it as
// a Config instance, and validates and normalizes it.
// Extra items in data are ignored and missing items take their default
// values.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))
	c := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if u, found := os.LookupEnv(DatabaseURLEnv); found && u != "" {
		c.Database.DSN = u
		if strings.HasPrefix(u, "postgres://") ||
			strings.HasPrefix(u, "postgresql://") {
			c.Database.Driver = gormdb.DriverPostgres
		}
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	settings.Default(&c.Gin.Logger, true)
	settings.Default(&c.Gin.Recovery, true)
	if err := c.Log.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating log settings: %w", err)
	}
	settings.Default(&c.Metrics.Enabled, true)
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path %q is not absolute", c.Metrics.Path)
	}
	s := c.Usecases.Sessions
	if s.HourlyRate != nil && *s.HourlyRate < 0 {
		return fmt.Errorf("negative hourly rate: %v", *s.HourlyRate)
	}
	if s.BillingPeriod != nil && *s.BillingPeriod <= 0 {
		return fmt.Errorf("non-positive billing period: %v", *s.BillingPeriod)
	}
	if s.Currency != nil && strings.TrimSpace(*s.Currency) == "" {
		return errors.New("empty currency")
	}
	return nil
}

// ValidateAndNormalize fills the missing database settings with their
// driver specific defaults.
func (d *Database) ValidateAndNormalize() error {
	switch d.Driver {
	case "":
		d.Driver = gormdb.DriverSQLite
	case gormdb.DriverSQLite, gormdb.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
	if d.DSN == "" {
		if d.Driver == gormdb.DriverPostgres {
			return errors.New("postgres dsn is required")
		}
		d.DSN = "parkings.db"
	}
	if d.Driver == gormdb.DriverSQLite {
		settings.Default(&d.MaxOpenConns, 1)
	} else {
		settings.Default(&d.MaxOpenConns, 10)
	}
	if *d.MaxOpenConns <= 0 {
		return fmt.Errorf("max-open-conns (%d) is not positive", *d.MaxOpenConns)
	}
	return nil
}

// ValidateAndNormalize checks the log level and format names.
func (l *Log) ValidateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch l.Format = strings.ToLower(l.Format); l.Format {
	case "":
		l.Format = "json"
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %q", l.Format)
	}
	return nil
}

// NewLogger creates a slog logger which writes to w based on the
// level and format settings.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(l.Level)) // validated beforehand
	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl <= slog.LevelDebug}
	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the d settings.
func (d Database) ConnectionPool(ctx context.Context) (*gormdb.Pool, error) {
	dialector, err := gormdb.Dialector(d.Driver, d.DSN)
	if err != nil {
		return nil, err
	}
	p, err := gormdb.NewPool(ctx, dialector, *d.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("gormdb.NewPool(driver=%s): %w", d.Driver, err)
	}
	return p, nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the c settings.
func (c *Config) ConnectionPool(ctx context.Context) (*gormdb.Pool, error) {
	return c.Database.ConnectionPool(ctx)
}

// NewInitDBUseCase instantiates a database initialization use case.
func (c *Config) NewInitDBUseCase(p repo.Pool) *migrationuc.InitDBUseCase {
	return migrationuc.NewInitDB(
		p, schemarp.New(), clientsrp.New(), parkingsrp.New(),
	)
}

// NewEngine instantiates a gin.Engine with the configured middlewares.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// NewClientsUseCase instantiates a new clients use case.
func (c *Config) NewClientsUseCase(p repo.Pool) *clientsuc.UseCase {
	return clientsuc.New(p, clientsrp.New())
}

// NewParkingsUseCase instantiates a new parkings use case.
func (c *Config) NewParkingsUseCase(p repo.Pool) *parkingsuc.UseCase {
	return parkingsuc.New(p, parkingsrp.New())
}

// NewSessionsUseCase instantiates a new sessions use case based on
// the settings in the c struct. The simulated payment gateway is used
// and committed sessions are counted if metrics are enabled.
func (c *Config) NewSessionsUseCase(p repo.Pool) (*sessionsuc.UseCase, error) {
	opts := c.Usecases.Sessions.options()
	if *c.Metrics.Enabled {
		opts = append(opts, sessionsuc.WithRecorder(metrics.Recorder{}))
	}
	return sessionsuc.New(
		p, clientsrp.New(), parkingsrp.New(), sessionsrp.New(),
		stubpay.New(), opts...,
	)
}

func (s Sessions) options() []sessionsuc.Option {
	opts := make([]sessionsuc.Option, 0, 4)
	if s.HourlyRate != nil {
		opts = append(opts, sessionsuc.WithHourlyRate(*s.HourlyRate))
	}
	if s.Currency != nil {
		opts = append(opts, sessionsuc.WithCurrency(*s.Currency))
	}
	if s.BillingPeriod != nil {
		d := time.Duration(*s.BillingPeriod)
		opts = append(opts, sessionsuc.WithBillingPeriod(d))
	}
	return opts
}
