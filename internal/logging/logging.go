// Package logging builds the diagnostic loggers injected into the parser and
// the simulation engine. Nothing here touches process-wide logger state.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "WARNING"

var levels = []struct {
	name  string
	level log.Level
}{
	{"CRITICAL", log.FatalLevel},
	{"ERROR", log.ErrorLevel},
	{"WARNING", log.WarnLevel},
	{"INFO", log.InfoLevel},
	{"DEBUG", log.DebugLevel},
}

// Levels returns the recognized level names, most severe first.
func Levels() []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.name
	}
	return names
}

// ParseLevel maps a level name (case-insensitive) to a log.Level.
func ParseLevel(name string) (log.Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, l := range levels {
		if l.name == upper {
			return l.level, nil
		}
	}
	return 0, fmt.Errorf("logging: unknown level %q (want one of %s)", name, strings.Join(Levels(), ", "))
}

// New creates a logger writing to w that only emits records at or above level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "roomba",
	}), nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
