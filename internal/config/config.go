// Package config loads the CLI's optional defaults file: the ECC level,
// quiet zone and output style used when a flag isn't given on the command
// line. A missing file yields the built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's persisted defaults.
type Config struct {
	EccLevel  string `yaml:"ecc_level"`
	QuietZone int    `yaml:"quiet_zone"`
	Style     string `yaml:"style"`
	LogLevel  string `yaml:"loglevel"`
}

// Defaults returns a Config populated with the values Generate itself
// defaults to (qrcore.DefaultOptions), plus the CLI-only Style and
// LogLevel fields.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		EccLevel:  "M",
		QuietZone: 4,
		Style:     "terminal",
		LogLevel:  "warn",
	}
}

// Load reads path and unmarshals it over Defaults(). A missing file is not
// an error: Load returns the defaults unchanged, mirroring the CLI's
// "works with zero configuration" contract.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed. cmd/qrcore does not call it: the CLI only reads the file, and a
// missing config file is not created.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
