// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation in a production environment, init may be used
and init-dev also inserts a sample client and parking.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the missing database tables",
	Long: `Create the missing clients, parkings, and client parkings tables
with their indices and constraints. The database connection information
are read from the config file. Existing rows are kept intact.`,
	RunE: initDB(false),
	Args: cobra.NoArgs,
}

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Create the database tables and insert sample records",
	Long: `Create the missing database tables (like init) and insert a
client having a credit card and a parking with ten places.`,
	RunE: initDB(true),
	Args: cobra.NoArgs,
}

func initDB(dev bool) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		c, p, err := loadConfig(ctx)
		if err != nil {
			return err
		}
		defer p.Close()
		iduc := c.NewInitDBUseCase(p)
		if dev {
			err = iduc.InitDev(ctx)
		} else {
			err = iduc.InitProd(ctx)
		}
		if err != nil {
			return fmt.Errorf("initializing DB (dev=%v): %w", dev, err)
		}
		return nil
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(initCmd, initDevCmd)
}
