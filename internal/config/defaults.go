package config

import (
	_ "embed"

	"github.com/vovakirdan/roomba/internal/logging"
)

//go:embed defaults/roomba.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Input:    "input.txt",
		LogLevel: logging.DefaultLevel,
		History: HistoryConfig{
			Enabled: false,
			DBPath:  "~/.roomba/runs.db",
			Limit:   10,
		},
		Map: MapConfig{
			Trail: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
