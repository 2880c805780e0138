// Package config loads the optional wwninfo configuration file from
// $HOME/.wwninfo/config.yaml. A missing file is not an error; every field
// has a working default.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/santools/wwninfo/internal/cache"
	"github.com/santools/wwninfo/internal/utils"
)

// Filename is the configuration file name inside the wwninfo cache directory.
const Filename = "config.yaml"

const defaultTimeoutSeconds = 30

// Config represents the wwninfo configuration file.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// RegistryConfig overrides the OUI registry defaults.
type RegistryConfig struct {
	// URL is the location of the IEEE OUI registry document.
	//
	// Optional. If empty, the canonical IEEE URL is used.
	URL string `yaml:"url"`

	// CachePath is the directory holding the cached registry document.
	//
	// Optional. If empty, $HOME/.wwninfo is used.
	CachePath string `yaml:"cachePath"`
}

// HTTPConfig tunes the network fetch.
type HTTPConfig struct {
	// TimeoutSeconds bounds the registry download.
	//
	// Optional. Defaults to 30 seconds.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// CheckAndSetDefaults validates the configuration and fills defaults.
func (c *Config) CheckAndSetDefaults() error {
	if c.Registry.URL != "" {
		parsed, err := url.Parse(c.Registry.URL)
		if err != nil {
			return fmt.Errorf("invalid registry.url: %w", err)
		}
		if parsed.Scheme != "https" && parsed.Scheme != "http" {
			return fmt.Errorf("invalid registry.url scheme %q: must be 'https' or 'http'", parsed.Scheme)
		}
	}
	if c.HTTP.TimeoutSeconds < 0 {
		return errors.New("invalid http.timeoutSeconds: must not be negative")
	}
	if c.HTTP.TimeoutSeconds == 0 {
		c.HTTP.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

// HTTPClient builds an HTTP client honoring the configured timeout.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{
		Timeout: time.Duration(c.HTTP.TimeoutSeconds) * time.Second,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(cache.CacheDir(), Filename)
}

// Load reads and validates the configuration file.
//
// A missing file yields the default configuration. A present but malformed
// file is an error; a silently ignored typo would be worse than failing.
func Load(optionalPath ...string) (*Config, error) {
	path := utils.OptionalArg(optionalPath, DefaultPath())

	cfg := &Config{}
	if utils.FileExists(path) {
		data, err := utils.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}
