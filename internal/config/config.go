// Package config loads CLI defaults for exactnum from a YAML or TOML file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a config file.
type Format int

const (
	// FormatYAML is the default.
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// MaxDigits bounds Digits: float64 carries about 15-17 significant digits.
const MaxDigits = 15

// Config holds the settings shared by all commands. Explicit flags override it.
type Config struct {
	Digits  int    `yaml:"digits" toml:"digits"`   // decimal places for trig/exp forms
	Format  string `yaml:"format" toml:"format"`   // "text" | "json"
	Verbose bool   `yaml:"verbose" toml:"verbose"` // debug logging
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Digits: 4, Format: "text"}
}

// Load reads path over Default. The format is picked from the extension
// (.toml is TOML, anything else YAML). Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	format := DetectFormat(path)
	if err := decode(content, format, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s config %s: %w", format, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	default:
		if len(bytes.TrimSpace(content)) == 0 {
			return nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		return dec.Decode(cfg)
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Digits < 0 || c.Digits > MaxDigits {
		return fmt.Errorf("digits must be between 0 and %d, got %d", MaxDigits, c.Digits)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("format must be text or json, got %q", c.Format)
	}
	return nil
}
