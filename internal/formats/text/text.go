// Package text registers the plain text room format: bounds, start, dust
// lines and a trailing direction line.
package text

import (
	"github.com/vovakirdan/roomba/internal/registry"
	"github.com/vovakirdan/roomba/internal/room"
)

func init() {
	registry.Register(registry.Format{
		Name:       "text",
		Title:      "Plain text (bounds, start, dust lines, directions)",
		Extensions: []string{".txt"},
		Decode:     room.Parse,
	})
}
