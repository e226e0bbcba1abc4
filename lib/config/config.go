// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads.
const EnvironmentVariable = "BLOCKHUFF_CONFIG"

// LogLevels lists the accepted values for Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// CompareAlgorithms lists the accepted values for
// Config.Compare.Algorithms.
var CompareAlgorithms = []string{"none", "lz4", "zstd", "s2"}

// Config is the master configuration for blockhuff.
type Config struct {
	// BlockSize is the default block size in bytes for compress and
	// compare when --block-size is not given.
	// Default: 1
	BlockSize int `yaml:"block_size" json:"block_size"`

	// KeepPartialOutput leaves a half-written output file in place
	// when compress or decompress fails.
	// Default: false
	KeepPartialOutput bool `yaml:"keep_partial_output" json:"keep_partial_output"`

	// LogLevel is the minimum level logged to stderr. --verbose
	// overrides it with debug.
	// Values: debug, info, warn, error
	// Default: info
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Compare configures the compare command.
	Compare CompareConfig `yaml:"compare" json:"compare"`
}

// CompareConfig configures "blockhuff compare".
type CompareConfig struct {
	// Algorithms are the reference compressors measured alongside
	// block Huffman, in table order.
	// Default: [lz4, zstd]
	Algorithms []string `yaml:"algorithms" json:"algorithms"`
}

// Default returns the default configuration. Every field is set, so a
// config file only needs to name the values it changes.
func Default() *Config {
	return &Config{
		BlockSize:         1,
		KeepPartialOutput: false,
		LogLevel:          "info",
		Compare: CompareConfig{
			Algorithms: []string{"lz4", "zstd"},
		},
	}
}

// Load loads configuration from the file named by BLOCKHUFF_CONFIG.
// Fails when the variable is not set; use [Resolve] for the
// flag-then-environment-then-default chain.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a blockhuff config file, or use --config flag", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, layered over
// [Default]. The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve returns the configuration for a command invocation.
// flagPath wins when non-empty, then BLOCKHUFF_CONFIG, then [Default].
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// loadFile loads a single configuration file, merging into the current
// config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(c); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
		return nil
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(c); err != nil {
			// An empty file decodes to io.EOF and leaves the defaults.
			if len(bytes.TrimSpace(data)) == 0 {
				return nil
			}
			return fmt.Errorf("parsing YAML: %w", err)
		}
		return nil
	}
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.BlockSize < 1 {
		errs = append(errs, fmt.Errorf("block_size must be at least 1, got %d", c.BlockSize))
	}

	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", LogLevels))
	}

	seen := make(map[string]bool, len(c.Compare.Algorithms))
	for _, algorithm := range c.Compare.Algorithms {
		if !slices.Contains(CompareAlgorithms, algorithm) {
			errs = append(errs, fmt.Errorf("compare.algorithms: %q must be one of: %v", algorithm, CompareAlgorithms))
			continue
		}
		if seen[algorithm] {
			errs = append(errs, fmt.Errorf("compare.algorithms: %q listed twice", algorithm))
		}
		seen[algorithm] = true
	}

	return errors.Join(errs...)
}
