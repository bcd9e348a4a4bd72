// Copyright (c) 2014-2015 The Notify Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package config loads the kfd command configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the kfd command configuration.
type Config struct {
	Log     LogConfig   `yaml:"log"`
	Watch   WatchConfig `yaml:"watch"`
	Signals []string    `yaml:"signals"` // signal names, numbers or @groups
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Buffer int         `yaml:"buffer"` // capacity of the event channel
	Raw    bool        `yaml:"raw"`    // print raw inotify records
	Paths  []WatchPath `yaml:"paths"`
}

// WatchPath is a single watch-point.
type WatchPath struct {
	Path   string   `yaml:"path"`
	Events []string `yaml:"events"` // watch.ParseEvent names, all when empty
}

// Default gives the configuration used when no file is given.
func Default() (*Config, error) {
	var cfg Config
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromBytes loads configuration from bytes without applying environment
// overrides. This is intended for testing where env vars should not interfere.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Watch.Buffer == 0 {
		cfg.Watch.Buffer = 128
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KFD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("KFD_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func validateConfig(cfg *Config) error {
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", cfg.Log.Format)
	}
	if cfg.Watch.Buffer < 0 {
		return fmt.Errorf("invalid watch buffer %d", cfg.Watch.Buffer)
	}
	for i, p := range cfg.Watch.Paths {
		if strings.TrimSpace(p.Path) == "" {
			return fmt.Errorf("watch.paths[%d]: path is required", i)
		}
	}
	return nil
}

// ParseLevel converts a level name into slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
