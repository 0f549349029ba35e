// Package config provides YAML-based configuration for the roomba CLI:
// default input path, log level, run history and map rendering.
package config

import (
	"fmt"

	"github.com/vovakirdan/roomba/internal/logging"
)

// Config contains all settings the CLI reads before a run.
type Config struct {
	Input    string        `yaml:"input"`
	LogLevel string        `yaml:"log_level"`
	History  HistoryConfig `yaml:"history"`
	Map      MapConfig     `yaml:"map"`
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
	Limit   int    `yaml:"limit"` // Rows shown by the history command
}

// MapConfig controls the map command.
type MapConfig struct {
	Trail bool `yaml:"trail"`
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: input path is empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("config: history is enabled but db_path is empty")
	}
	return nil
}
