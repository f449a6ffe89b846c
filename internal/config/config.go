// Package config loads defaults for goseatalk-analyze from a YAML file.
//
// Example:
//
//	input: /var/log/seatalk/capture.txt
//	raw: false
//	format: json
//	show_unrecognized: true
//	log_level: debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the analyze command settings.
type Config struct {
	// Input is a capture file; empty or "-" means standard input.
	Input            string `yaml:"input"`
	Raw              bool   `yaml:"raw"`
	Format           string `yaml:"format"`
	ShowUnrecognized bool   `yaml:"show_unrecognized"`
	LogLevel         string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format:   "text",
		LogLevel: "info",
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Read parses path over the defaults without validating, so callers can
// layer other settings on top first.
func Read(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.New("invalid log_level: " + err.Error())
	}
	return lvl, nil
}

// Stdin reports whether Input selects standard input.
func (c Config) Stdin() bool {
	return c.Input == "" || c.Input == "-"
}
