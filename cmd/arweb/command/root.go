// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the arweb
// car rental storefront. Commands are organized using the cobra
// library. The root command starts the web server itself, the "db"
// sub-command creates the database tables, and the "catalog"
// sub-command runs one catalog query and prints its result.
//
//	./arweb [-c /path/of/config.yaml]           # start web server
//	./arweb db init [--dev] [-c /path/of/config.yaml]
//	./arweb catalog [--search bmw] [--sort price-asc] [--page 2]
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

	"github.com/momeni/autorent/pkg/adapter/config"
	"github.com/momeni/autorent/pkg/adapter/config/cfg1"
	"github.com/momeni/autorent/pkg/adapter/restful/gin/routes"
	"github.com/momeni/autorent/pkg/core/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "arweb",
	Short: "A car rental storefront web server",
	Long: `A car rental storefront web server which serves the vehicles
catalog (with search, filters, sorting, and pagination) and the
shopping carts of the storefront clients. Carts are kept in a durable
key/value store (memory or PostgreSQL) and checked out carts may be
submitted as bookings to the back-office admin REST API.
The vehicles catalog may be read from the built-in seed list, a YAML
file, the PostgreSQL database, or the admin REST API.`,
	RunE: startWebServer,
}

// loadConfig loads the cfgPath configuration file and installs the
// configured default logger.
func loadConfig() (*cfg1.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if err = log.Setup(os.Stderr, c.Log.Level, c.Log.Format); err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}
	return c, nil
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	cs, err := c.Build(ctx)
	if err != nil {
		return fmt.Errorf("building components: %w", err)
	}
	defer func() {
		if err := cs.Close(); err != nil {
			log.Error(ctx, "failed to close components", log.Err("err", err))
		}
	}()
	catalog, err := c.NewCatalogUseCase(cs.Inventory, cs.Sessions)
	if err != nil {
		return fmt.Errorf("creating catalog use case: %w", err)
	}
	cart, err := c.NewCartUseCase(cs.Inventory, cs.Store, cs.AdminAPI)
	if err != nil {
		return fmt.Errorf("creating cart use case: %w", err)
	}
	e := c.Gin.NewEngine()
	routes.Register(e, catalog, cart, c.NewAdminUseCase(cs.AdminAPI))

	srv := &http.Server{
		Addr:              c.Server.Address,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", slog.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}
	log.Info(
		ctx, "shutting down",
		slog.Any("timeout", *c.Server.ShutdownTimeout),
	)
	sdCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(*c.Server.ShutdownTimeout),
	)
	defer cancel()
	if err = srv.Shutdown(sdCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
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
