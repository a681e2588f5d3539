// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const MemoryStore = "memory"

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects the output store backend the embedding engine connects
// to. The resolution core only ships the in-memory backend; engines plug in
// their own.
type StoreConfig struct {
	Kind string `yaml:"kind"`
}

type LoggingConfig struct {
	FilePath        string `yaml:"file-path"`
	ConsoleLogLevel string `yaml:"console-log-level"`
	FileLogLevel    string `yaml:"file-log-level"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{Kind: MemoryStore},
		Logging: LoggingConfig{
			ConsoleLogLevel: "info",
			FileLogLevel:    "debug",
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

func (l LoggingConfig) ConsoleLevel() slog.Level {
	return parseLevel(l.ConsoleLogLevel, slog.LevelInfo)
}

func (l LoggingConfig) FileLevel() slog.Level {
	return parseLevel(l.FileLogLevel, slog.LevelDebug)
}

func parseLevel(s string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return fallback
	}

	return level
}
