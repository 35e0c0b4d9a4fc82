// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers contains the common versions parsing which is required
// by all config versions. The idea is that versions should be known
// before trying to obtain and parse the actual data, so the actual data
// format can be known and verified when loading them and although the
// format of keeping versions may change too, but it is less likely to
// change over time.
package vers

import (
	"github.com/momeni/autorent/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config contains the versions of those system components which should
// be checked before loading them. It may be embedded with inline format
// in the released config struct versions in order to indicate their
// versions and relevant items format.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the configuration file version which is used for
// detecting its format. Tables are created by GORM auto-migration, so
// no database schema version is tracked.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Load deserializes the data byte slice into a new instance of Config
// struct. Of course, data may contain extra fields which will be
// ignored. The deserialized version fields (in the returned Config)
// can be used to detect the format of other settings in the data and
// complete deserialization of the remaining fields.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	return vc, nil
}

// Validate returns an error if the stored configuration version may
// not be read by a reader of the major.minor version.
func (vc *Config) Validate(major, minor uint) error {
	return vc.Versions.Config.Supports(major, minor)
}
