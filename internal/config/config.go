// Package config loads the noticeboard CLI configuration.
package config

import (
	"os"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/nrfta/noticeboard-go/rest"
)

// DefaultTimeout is used when the timeout is unset.
const DefaultTimeout = 10 * time.Second

// Config represents the CLI configuration
type Config struct {
	BaseURL  string `toml:"base_url"`
	ListPath string `toml:"list_path"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
	Role     string `toml:"role"`

	// Timeout is a Go duration string, e.g. "5s".
	Timeout string `toml:"timeout"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "http://localhost:8080",
		ListPath: rest.DefaultListPath,
		Timeout:  DefaultTimeout.String(),
	}
}

// Load reads the TOML file at path over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if _, err := cfg.HTTPTimeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// HTTPTimeout parses Timeout, falling back to DefaultTimeout when empty.
func (c *Config) HTTPTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid timeout %q", c.Timeout)
	}
	return d, nil
}
