// Package registry provides a global registry of room description formats.
// Formats register themselves in init() functions, allowing the loader and the
// CLI to discover decoders without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/roomba/internal/room"
)

// DefaultFormat is used for paths whose extension no format claims.
const DefaultFormat = "text"

// Decoder builds a validated room from raw input.
type Decoder func(r io.Reader, opts ...room.Option) (*room.Room, error)

// Format describes a registered input format.
type Format struct {
	// Name is a unique identifier (e.g., "text", "yaml").
	Name string

	// Title is a human-readable description for listings.
	Title string

	// Extensions are lower-case file extensions including the dot.
	Extensions []string

	Decode Decoder
}

var (
	formats = make(map[string]Format)
	byExt   = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a format to the registry.
// Panics if the name or one of the extensions is already registered.
func Register(f Format) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := formats[f.Name]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", f.Name))
	}
	for _, ext := range f.Extensions {
		ext = strings.ToLower(ext)
		if owner, exists := byExt[ext]; exists {
			panic(fmt.Sprintf("registry: extension %q already registered by %q", ext, owner))
		}
		byExt[ext] = f.Name
	}
	formats[f.Name] = f
}

// List returns all registered formats, sorted by name.
func List() []Format {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Format, 0, len(formats))
	for _, f := range formats {
		result = append(result, f)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the format with the given name.
func Lookup(name string) (Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := formats[name]
	if !ok {
		return Format{}, fmt.Errorf("registry: unknown format %q", name)
	}
	return f, nil
}

// ForPath picks the format registered for the path's extension, falling back
// to DefaultFormat.
func ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	mu.RLock()
	name, ok := byExt[ext]
	mu.RUnlock()

	if !ok {
		name = DefaultFormat
	}
	return Lookup(name)
}
