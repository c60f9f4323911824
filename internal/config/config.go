// Package config loads CLI settings from an optional TOML file and ADVENT_*
// environment variables. Environment values override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ADVENT"
	// DefaultPath is read when no explicit config file is given.
	DefaultPath = "advent.toml"
)

// Answer is a known puzzle result, e.g. {"2018/09/2", 3009951158}.
type Answer struct {
	Puzzle string `toml:"puzzle"`
	Value  int64  `toml:"value"`
}

// Config holds every CLI setting.
type Config struct {
	LogLevel string   `toml:"log_level" envconfig:"LOG_LEVEL"`
	NoColor  bool     `toml:"no_color"  envconfig:"NO_COLOR"`
	InputDir string   `toml:"input_dir" envconfig:"INPUT_DIR"`
	Answers  []Answer `toml:"answers"   ignored:"true"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{LogLevel: "info", InputDir: "."}
}

// Load reads path from fsys (DefaultPath when empty) and then applies
// environment overrides. A missing DefaultPath is not an error; a missing
// explicit path is.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := afero.ReadFile(fsys, path)
	switch {
	case err == nil:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	return &cfg, nil
}

// Expected returns the configured answer for puzzle, if any.
func (c *Config) Expected(puzzle string) (int64, bool) {
	for _, a := range c.Answers {
		if a.Puzzle == puzzle {
			return a.Value, true
		}
	}

	return 0, false
}
