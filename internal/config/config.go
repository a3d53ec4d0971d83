// Package config loads fixture viewer settings.
//
// Settings are resolved in order, later sources winning:
//  1. built-in defaults
//  2. the YAML config file (fixture.yaml unless --config says otherwise)
//  3. variables from a .env file in the working directory
//  4. FIXTURE_* environment variables
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/fixture-viewer/internal/logger"
)

const (
	DefaultPath      = "fixture.yaml"
	DefaultSource    = "fixture_output.csv"
	DefaultFormat    = "text"
	DefaultLogLevel  = "info"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "fixture-viewer/1.0 (github.com/pfrederiksen/fixture-viewer)"
)

// Environment variable names
const (
	EnvSource    = "FIXTURE_SOURCE"
	EnvFormat    = "FIXTURE_FORMAT"
	EnvLogLevel  = "FIXTURE_LOG_LEVEL"
	EnvTimeout   = "FIXTURE_TIMEOUT"
	EnvUserAgent = "FIXTURE_USER_AGENT"
)

// Formats accepted by the show command
var Formats = []string{"text", "json", "html"}

// Config holds the resolved settings
type Config struct {
	// Source is a file path or http(s) URL of the fixture dataset.
	Source string `yaml:"source"`

	// Format is the default output format: text, json or html.
	Format string `yaml:"format"`

	// Output is a file to write rendered output to. Empty means stdout.
	Output string `yaml:"output"`

	LogLevel    string        `yaml:"log_level"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Source:      DefaultSource,
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
		HTTPTimeout: DefaultTimeout,
		UserAgent:   DefaultUserAgent,
	}
}

// Load resolves settings from defaults, the config file at path, .env and
// the environment. A missing file is only an error when explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || explicit {
				return nil, err
			}
			logger.Debug("No config file, using defaults", logger.Fields{"path": path})
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.HTTPTimeout = d
	}
	return nil
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("source cannot be empty")
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if !validFormat(c.Format) {
		return fmt.Errorf("invalid format: %s (must be %s)", c.Format, strings.Join(Formats, ", "))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}

	return nil
}

// Level returns the configured log level. Call after Validate.
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
