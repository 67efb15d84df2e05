// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the config from the given TOML file on top of the
// defaults, and validates the result. Unknown keys are an error.
// A leading ~ in the path is expanded to the home directory.
func Open(file string) (*Config, error) {
	cfg := New()
	if err := cfg.Open(file); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", file, err)
	}
	return cfg, nil
}

// Open decodes the given TOML file into the config, overwriting
// only the keys present in the file.
func (cfg *Config) Open(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	slog.Debug("opened config", "file", path)
	return nil
}

// Save writes the config to the given TOML file.
func (cfg *Config) Save(file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
