// Package yamlroom registers a YAML room format:
//
//	size: {w: 5, h: 5}
//	start: {x: 1, y: 2}
//	dust:
//	  - {x: 1, y: 0}
//	  - {x: 2, y: 2}
//	directions: NNESEESWNWW
//
// Decoded values go through the same validation as the text format. Bounds,
// start and dust are checked before the directions.
package yamlroom

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/roomba/internal/core"
	"github.com/vovakirdan/roomba/internal/registry"
	"github.com/vovakirdan/roomba/internal/room"
)

// YAMLRoom represents the YAML structure for a room file.
type YAMLRoom struct {
	Size       *YAMLSize   `yaml:"size"`
	Start      *YAMLPoint  `yaml:"start"`
	Dust       []YAMLPoint `yaml:"dust,omitempty"`
	Directions string      `yaml:"directions"`
}

// YAMLSize represents room dimensions. Both keys are required.
type YAMLSize struct {
	W *int `yaml:"w"`
	H *int `yaml:"h"`
}

// YAMLPoint represents a single cell.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func init() {
	registry.Register(registry.Format{
		Name:       "yaml",
		Title:      "YAML document (size, start, dust, directions)",
		Extensions: []string{".yaml", ".yml"},
		Decode:     Decode,
	})
}

// Decode parses a YAML room description.
func Decode(r io.Reader, opts ...room.Option) (*room.Room, error) {
	var yr YAMLRoom
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&yr); err != nil {
		if err == io.EOF {
			return nil, &room.Error{Kind: room.KindMalformedBounds, Msg: "yaml document is empty"}
		}
		return nil, &room.Error{Kind: room.KindMalformedLine, Msg: "invalid yaml room", Err: err}
	}

	if yr.Size == nil || yr.Size.W == nil || yr.Size.H == nil {
		err := &room.Error{Kind: room.KindMalformedBounds, Msg: "size needs both w and h"}
		return nil, fmt.Errorf("yaml room: %w", err)
	}
	if yr.Start == nil {
		err := &room.Error{Kind: room.KindMalformedLine, Msg: "missing start position"}
		return nil, fmt.Errorf("yaml room: %w", err)
	}

	dust := make([]core.Coord, len(yr.Dust))
	for i, p := range yr.Dust {
		dust[i] = core.C(p.X, p.Y)
	}

	rm, err := room.New(
		core.C(*yr.Size.W, *yr.Size.H),
		core.C(yr.Start.X, yr.Start.Y),
		dust,
		nil,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("yaml room: %w", err)
	}

	dirs, err := room.ParseDirections(yr.Directions, opts...)
	if err != nil {
		return nil, fmt.Errorf("yaml room: %w", err)
	}
	return rm.WithDirections(dirs), nil
}

// Encode renders a room as a YAML document, dust sorted by Y then X.
func Encode(w io.Writer, r *room.Room) error {
	width, height := r.Bounds().X, r.Bounds().Y
	yr := YAMLRoom{
		Size:       &YAMLSize{W: &width, H: &height},
		Start:      &YAMLPoint{X: r.Start().X, Y: r.Start().Y},
		Directions: core.FormatDirections(r.Directions()),
	}
	for _, c := range r.Dust().Sorted() {
		yr.Dust = append(yr.Dust, YAMLPoint{X: c.X, Y: c.Y})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yr); err != nil {
		return fmt.Errorf("yaml room: %w", err)
	}
	return enc.Close()
}
