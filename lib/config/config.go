// Copyright 2026 The Fillprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads optional run defaults from a YAML file.
//
// The file is located by exactly one of:
//   - the FILLPROBE_CONFIG environment variable, or
//   - the --config flag.
//
// There is no home-directory discovery and no fallback chain: a probe
// that silently picks up defaults from an unexpected place could fill
// the wrong directory. No file means built-in defaults, and command
// line flags always win over file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "FILLPROBE_CONFIG"

// Config holds the file-settable run defaults. Pointer fields
// distinguish "unset" from an explicit zero value.
type Config struct {
	// Target is the directory to fill.
	Target string `yaml:"target"`

	// Count is the requested chunk count.
	Count *int `yaml:"count"`

	// Size is the chunk size expression (e.g. "256M").
	Size string `yaml:"size"`

	// Progress forces the progress bar on or off. Unset means
	// auto-detect from the terminal.
	Progress *bool `yaml:"progress"`

	// Quiet suppresses per-chunk output and diagnostics.
	Quiet *bool `yaml:"quiet"`
}

// Path resolves the config file path from the flag value and the
// environment. The flag wins; empty means no config file.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// Load reads and parses the config file at path. Unknown keys are
// rejected so a typo in the file fails loudly instead of silently
// falling back to a built-in default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// An empty file is a valid config with no overrides.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
