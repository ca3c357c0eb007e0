// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the parking
// web project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions.
//
//	./parkweb [-c /path/of/config.yaml] [-a :8080]  # start web server
//	./parkweb db init [-c /path/of/config.yaml]
//	./parkweb db init-dev [-c /path/of/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/clean-parking/pkg/adapter/config"
	"github.com/momeni/clean-parking/pkg/adapter/db/gormdb"
	"github.com/momeni/clean-parking/pkg/adapter/restful/gin/routes"
	"github.com/momeni/clean-parking/pkg/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:   "parkweb",
	Short: "A parking lot record-keeping web service",
	Long: `A parking lot record-keeping web service which tracks clients,
parking facilities, and their parking sessions. Clients may enter a
parking if it is opened and has an available place, and pay for every
started hour of their stay while exiting.
The database (SQLite or PostgreSQL) tables are created on start up
if they are missing.`,
	RunE: startWebServer,
	Args: cobra.NoArgs,
}

// loadConfig loads the configuration file, installs its logger as the
// default slog logger, and opens a database connection pool.
func loadConfig(ctx context.Context) (*config.Config, *gormdb.Pool, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.Log.NewLogger(os.Stderr))
	log.Info(ctx, "configuration is loaded",
		slog.String("path", cfgPath),
		slog.String("driver", c.Database.Driver),
	)
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("creating DB pool: %w", err)
	}
	return c, p, nil
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, p, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	defer p.Close()
	if err = c.NewInitDBUseCase(p).InitProd(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	e := c.Gin.NewEngine()
	if err = routes.Register(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "web server is listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("running web server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down the web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().StringVarP(
		&addr, "addr", "a", ":8080", "web server listening address",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}
