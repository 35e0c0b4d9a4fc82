// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
//
// Settings are read from a YAML file and then may be overridden by
// ARWEB_* environment variables (e.g., ARWEB_DATABASE_PASSWORD or
// ARWEB_SESSIONS_REDIS_URL). Thereafter, they are validated and their
// missing optional items take their default values.
package cfg1

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/momeni/autorent/pkg/adapter/config/settings"
	"github.com/momeni/autorent/pkg/adapter/config/vers"
	"github.com/momeni/autorent/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// EnvPrefix is prepended to the names of all environment variables
// which may override the configuration file settings.
const EnvPrefix = "ARWEB_"

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Log       Log       `envPrefix:"LOG_"`
	Server    Server    `envPrefix:"SERVER_"`
	Database  Database  `envPrefix:"DATABASE_"`
	Gin       Gin       `envPrefix:"GIN_"`
	Storage   Storage   `envPrefix:"STORAGE_"`
	Sessions  Sessions  `envPrefix:"SESSIONS_"`
	Inventory Inventory `envPrefix:"INVENTORY_"`
	AdminAPI  AdminAPI  `yaml:"admin-api" envPrefix:"ADMIN_API_"`
	Usecases  Usecases  `envPrefix:"USECASES_"`

	// Vers contains the configuration file version string.
	Vers vers.Config `yaml:",inline"`
}

// Log contains the slog handler settings.
type Log struct {
	Level  string `env:"LEVEL"`  // debug, info, warn, or error
	Format string `env:"FORMAT"` // text or json
}

// Server contains the HTTP listener settings.
type Server struct {
	Address string `env:"ADDRESS"` // host:port, defaults to :8080

	// ShutdownTimeout bounds the graceful shutdown of the server.
	ShutdownTimeout *settings.Duration `yaml:"shutdown-timeout"`
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool `env:"LOGGER"`   // Whether to log each request
	Recovery *bool `env:"RECOVERY"` // Whether to recover from panics
}

// These constants enumerate the storage.driver values.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Storage selects the durable key/value store which keeps the carts
// and the admin API token.
type Storage struct {
	Driver string `env:"DRIVER"` // memory or postgres
}

// Sessions selects the store of the per-session catalog preferences.
type Sessions struct {
	Driver   string `env:"DRIVER"`                     // memory or redis
	RedisURL string `yaml:"redis-url" env:"REDIS_URL"` // redis://host:port/db
	Prefix   string `env:"PREFIX"`                     // redis keys prefix

	// TTL is the lifetime of the stored catalog preferences.
	TTL *settings.Duration `yaml:"ttl"`
}

// These constants enumerate the inventory.source values.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
	SourceAPI      = "api"
)

// Inventory selects where the catalog vehicles are read from.
type Inventory struct {
	Source string `env:"SOURCE"` // static, postgres, or api

	// File is an optional YAML file with a top-level vehicles list
	// which replaces the built-in seed catalog of the static source.
	File string `env:"FILE"`

	// PageLimit is the page size when walking the admin API listing.
	PageLimit int `yaml:"page-limit" env:"PAGE_LIMIT"`
}

// AdminAPI contains the back-office REST API client settings.
type AdminAPI struct {
	BaseURL string             `yaml:"base-url" env:"BASE_URL"`
	Timeout *settings.Duration `yaml:"timeout"`
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Catalog Catalog `envPrefix:"CATALOG_"`
	Cart    Cart    `envPrefix:"CART_"`
}

// Catalog contains the configuration settings for the catalog use
// case. Nil values leave the use case defaults in effect.
type Catalog struct {
	GridPageSize        *int   `yaml:"grid-page-size" env:"GRID_PAGE_SIZE"`
	ListPageSize        *int   `yaml:"list-page-size" env:"LIST_PAGE_SIZE"`
	MaxVisiblePages     *int   `yaml:"max-visible-pages" env:"MAX_VISIBLE_PAGES"`
	CompactVisiblePages *int   `yaml:"compact-visible-pages" env:"COMPACT_VISIBLE_PAGES"`
	Collation           string `env:"COLLATION"` // BCP 47 tag, e.g. en or ru

	// MinPageSize and MaxPageSize are the inclusive boundaries of
	// both page sizes. A missing value indicates no bound.
	MinPageSize *int `yaml:"page-size-minimum"`
	MaxPageSize *int `yaml:"page-size-maximum"`
}

// Cart contains the configuration settings for the cart use case.
type Cart struct {
	MaxDays *int `yaml:"max-days" env:"MAX_DAYS"`
}

// Default values of the optional settings.
const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = settings.Duration(10 * time.Second)
	DefaultSessionsTTL     = settings.Duration(30 * time.Minute)
	DefaultAdminAPITimeout = settings.Duration(15 * time.Second)
)

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Environment variables are applied on top of the file
// settings. Thereafter, loaded Config will be validated and normalized
// in order to ensure that provided settings are acceptable (for example
// the major version which is reported by data settings must match
// with number 1 which is the major version of this config package).
func Load(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := env.ParseWithOptions(c, env.Options{
		Prefix: EnvPrefix,
	}); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
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
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	settings.Default(&c.Server.ShutdownTimeout, DefaultShutdownTimeout)
	settings.Default(&c.Sessions.TTL, DefaultSessionsTTL)
	settings.Default(&c.AdminAPI.Timeout, DefaultAdminAPITimeout)
	settings.Default(&c.Gin.Logger, false)
	settings.Default(&c.Gin.Recovery, false)

	var err error
	c.Storage.Driver, err = oneOf(
		"storage.driver", c.Storage.Driver, DriverMemory, DriverPostgres,
	)
	if err != nil {
		return err
	}
	c.Sessions.Driver, err = oneOf(
		"sessions.driver", c.Sessions.Driver, DriverMemory, DriverRedis,
	)
	if err != nil {
		return err
	}
	c.Inventory.Source, err = oneOf(
		"inventory.source", c.Inventory.Source,
		SourceStatic, SourcePostgres, SourceAPI,
	)
	if err != nil {
		return err
	}
	switch {
	case c.Sessions.Driver == DriverRedis && c.Sessions.RedisURL == "":
		return fmt.Errorf("sessions.redis-url is required by redis driver")
	case c.Inventory.Source == SourceAPI && c.AdminAPI.BaseURL == "":
		return fmt.Errorf("admin-api.base-url is required by api source")
	case c.Inventory.PageLimit < 0:
		return fmt.Errorf("inventory.page-limit must not be negative")
	}
	if c.NeedsDatabase() {
		if err := c.Database.ValidateAndNormalize(); err != nil {
			return fmt.Errorf("validating database settings: %w", err)
		}
	}
	return c.Usecases.validate()
}

// NeedsDatabase reports whether a database connection pool is required
// by the selected storage or inventory source.
func (c *Config) NeedsDatabase() bool {
	return c.Storage.Driver == DriverPostgres ||
		c.Inventory.Source == SourcePostgres
}

func (u *Usecases) validate() error {
	cc := &u.Catalog
	for name, ps := range map[string]**int{
		"grid-page-size": &cc.GridPageSize,
		"list-page-size": &cc.ListPageSize,
	} {
		err := settings.Clamp(name, ps, cc.MinPageSize, cc.MaxPageSize)
		if err != nil {
			return err
		}
	}
	for name, p := range map[string]*int{
		"grid-page-size":        cc.GridPageSize,
		"list-page-size":        cc.ListPageSize,
		"max-visible-pages":     cc.MaxVisiblePages,
		"compact-visible-pages": cc.CompactVisiblePages,
		"max-days":              u.Cart.MaxDays,
	} {
		if p != nil && *p < 1 {
			return fmt.Errorf("%s (%d) must be positive", name, *p)
		}
	}
	return nil
}

// oneOf lowercases v and ensures that it is one of the valid values.
// The empty string is replaced by the first valid value.
func oneOf(name, v string, valid ...string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return valid[0], nil
	}
	for _, s := range valid {
		if v == s {
			return v, nil
		}
	}
	return "", fmt.Errorf(
		"%s (%q) must be one of %s", name, v, strings.Join(valid, ", "),
	)
}
