// Package config loads the play settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Color modes accepted by the "color" key and the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidColor is returned when the color mode is not one of the known values.
var ErrInvalidColor = errors.New("invalid color mode")

// Config holds every setting a play session reads. Command-line flags
// override the values loaded from the file.
type Config struct {
	// Seed fixes the shuffle. Nil means a random deal.
	Seed        *uint64 `mapstructure:"seed"`
	ShowHidden  bool    `mapstructure:"show_hidden"`
	Color       string  `mapstructure:"color"`
	Banner      bool    `mapstructure:"banner"`
	Debug       bool    `mapstructure:"debug"`
	MetricsAddr string  `mapstructure:"metrics_addr"`
	Prompt      string  `mapstructure:"prompt"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Color:  ColorAuto,
		Banner: true,
	}
}

// Load reads path on top of the defaults. An empty path returns Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies raw onto cfg, leaving keys absent from raw untouched,
// and validates the result.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks the values that have a closed set of options.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColor, c.Color)
	}
}
