package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout
type fileConfig struct {
	Game struct {
		Boundary string `toml:"boundary"`
		Seed     int64  `toml:"seed"`
	} `toml:"game"`
	Keys map[string]string `toml:"keys"`
}

// Config is the resolved game configuration
type Config struct {
	Boundary core.Boundary
	Seed     int64 // 0 seeds food placement from the clock
	Keys     *input.KeyMap
}

// Default returns wrap mode, clock seed and the stock key map
func Default() *Config {
	return &Config{
		Boundary: core.BoundaryWrap,
		Keys:     input.DefaultKeyMap(),
	}
}

// Load reads an optional TOML file, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.apply(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML config data over the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown fields:\n%s", strict.String())
		}
		return fmt.Errorf("parse: %w", err)
	}

	if fc.Game.Boundary != "" {
		b, err := core.ParseBoundary(fc.Game.Boundary)
		if err != nil {
			return err
		}
		c.Boundary = b
	}
	if fc.Game.Seed != 0 {
		c.Seed = fc.Game.Seed
	}

	if len(fc.Keys) > 0 {
		override, err := input.ParseBindings(fc.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		c.Keys = c.Keys.Merge(override)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.EnvBoundary); v != "" {
		b, err := core.ParseBoundary(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvBoundary, err)
		}
		c.Boundary = b
	}

	if v := os.Getenv(constants.EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}
