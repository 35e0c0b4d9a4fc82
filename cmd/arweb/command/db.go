// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/autorent/pkg/adapter/db/postgres/kvrp"
	"github.com/momeni/autorent/pkg/adapter/inventory/static"
	"github.com/momeni/autorent/pkg/core/usecase/migrationuc"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
They are only meaningful when the config file selects the postgres
storage driver or inventory source.`,
}

var seedDev bool

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the vehicles and kv_entries tables",
	Long: `Create the vehicles and kv_entries tables (if they do not
exist) in the database which is specified in the configuration file.
With the --dev flag, the built-in seed vehicles (or the vehicles of
the inventory.file, if configured) are upserted too. Existing rows
which are not in the seed list are kept intact.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if !c.NeedsDatabase() {
		return errors.New("no postgres storage or inventory is configured")
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating connection pool: %w", err)
	}
	defer p.Close()
	muc := migrationuc.NewInitDB(p, carsrp.New(), kvrp.New())
	if !seedDev {
		return muc.InitProd(ctx)
	}
	seed := static.Seed()
	if c.Inventory.File != "" {
		inv, err := static.Load(c.Inventory.File)
		if err != nil {
			return fmt.Errorf("loading seed vehicles: %w", err)
		}
		if seed, err = inv.Vehicles(ctx); err != nil {
			return err
		}
	}
	return muc.InitDev(ctx, seed)
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the number of stored vehicles and kv entries",
	RunE:  dbStatus,
	Args:  cobra.NoArgs,
}

func dbStatus(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	if !c.NeedsDatabase() {
		return errors.New("no postgres storage or inventory is configured")
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating connection pool: %w", err)
	}
	defer p.Close()
	muc := migrationuc.NewInitDB(p, carsrp.New(), kvrp.New())
	st, err := muc.Status(ctx)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func init() {
	dbInitCmd.Flags().BoolVar(
		&seedDev, "dev", false, "upsert the development seed vehicles",
	)
	dbCmd.AddCommand(dbInitCmd, dbStatusCmd)
	rootCmd.AddCommand(dbCmd)
}
