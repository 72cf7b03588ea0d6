// Package config loads and validates the kiosk configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"voicekiosk/internal/order"
)

// LoggingConfig mirrors logging.Options in file form.
type LoggingConfig struct {
	Dir        string   `yaml:"dir"`
	Debug      bool     `yaml:"debug"`
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

// SessionConfig tunes session behavior.
type SessionConfig struct {
	DedupWindow time.Duration `yaml:"dedup_window"`
}

// Config is the top-level kiosk configuration.
type Config struct {
	Language    string        `yaml:"language"`
	CatalogPath string        `yaml:"catalog_path"`
	Session     SessionConfig `yaml:"session"`
	Logging     LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file is given: Korean
// locale, built-in demo catalog, logging disabled.
func Default() Config {
	return Config{
		Language: "ko",
		Session: SessionConfig{
			DedupWindow: order.DefaultDedupWindow,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file, layers it over the defaults, then applies
// environment overrides. An empty path returns defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Environment overrides, applied after the file so deployments can flip the
// locale or point at a different catalog without editing YAML.
func (c *Config) applyEnv() {
	if v := os.Getenv("KIOSK_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("KIOSK_CATALOG"); v != "" {
		c.CatalogPath = v
	}
}

// Validate rejects values the rest of the system cannot work with.
func (c Config) Validate() error {
	if c.Language != "ko" && c.Language != "en" {
		return fmt.Errorf("unsupported language %q (want ko or en)", c.Language)
	}
	if c.Session.DedupWindow < 0 {
		return fmt.Errorf("negative dedup window %s", c.Session.DedupWindow)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
