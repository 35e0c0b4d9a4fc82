// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/momeni/autorent/pkg/adapter/db/postgres"
)

// Database contains the database related configuration settings.
// The password is either given by the ARWEB_DATABASE_PASSWORD
// environment variable or is looked up in the .pgpass file of the
// PassDir folder.
type Database struct {
	Host    string `env:"HOST"`                    // DBMS server address
	Port    int    `env:"PORT"`                    // DBMS server port
	Name    string `env:"NAME"`                    // database name
	User    string `env:"USER"`                    // role name
	PassDir string `yaml:"pass-dir" env:"PASS_DIR"` // .pgpass folder
	SSLMode string `yaml:"ssl-mode" env:"SSL_MODE"` // e.g., disable

	MaxConns int `yaml:"max-conns" env:"MAX_CONNS"` // zero for no limit

	Password string `yaml:"-" env:"PASSWORD"`
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
func (d Database) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	u, err := d.ConnectionURL()
	if err != nil {
		return nil, err
	}
	p, err := postgres.NewPool(ctx, u, postgres.WithMaxConns(d.MaxConns))
	if err != nil {
		return nil, fmt.Errorf("connecting to %q: %w", d.Name, err)
	}
	return p, nil
}

// ConnectionURL returns the database connection URL embedding the
// host, port, role name, database name, and password value.
// Returned URL has the postgresql scheme.
//
// Without an explicit password, the .pgpass file in the d.PassDir
// folder is read. It may contain empty or `#`-commented lines in
// addition to the password specifying lines which should conform with
// the pgpass files format with lines like this:
//
//	host:port:dbname:role:password
func (d Database) ConnectionURL() (string, error) {
	pass := d.Password
	if pass == "" {
		var err error
		path := filepath.Join(d.PassDir, ".pgpass")
		if pass, err = d.lookupPassword(path); err != nil {
			return "", fmt.Errorf("using %q pass-file: %w", path, err)
		}
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.User, pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String(), nil
}

func (d Database) lookupPassword(path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.User)
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if pass, ok := strings.CutPrefix(line, prfx); ok && pass != "" {
			return pass, nil
		}
	}
	return "", errors.New("no matching password line")
}

// ValidateAndNormalize validates the `d` database settings and returns
// an error if they were not acceptable. The missing port is replaced
// by 5432.
func (d *Database) ValidateAndNormalize() error {
	if d.Port == 0 {
		d.Port = 5432
	}
	switch {
	case d.Host == "":
		return errors.New("database.host is required")
	case d.Name == "":
		return errors.New("database.name is required")
	case d.User == "":
		return errors.New("database.user is required")
	case d.Port < 0 || d.Port > 65535:
		return fmt.Errorf("database.port (%d) is out of range", d.Port)
	case d.MaxConns < 0:
		return fmt.Errorf("database.max-conns (%d) is negative", d.MaxConns)
	case d.Password == "" && d.PassDir == "":
		return errors.New("database.pass-dir or a password is required")
	}
	return nil
}
