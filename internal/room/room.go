// Package room holds the validated, immutable description of a cleaning run:
// the room bounds, the robot's start cell, the dust cells and the direction
// sequence. Every input format funnels through the checks in this package, so
// a *Room that exists is always internally consistent.
package room

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roomba/internal/core"
	"github.com/vovakirdan/roomba/internal/logging"
)

// Room is a validated room description. It is never mutated after
// construction and may be shared read-only between simulation runs.
type Room struct {
	bounds     core.Coord
	start      core.Coord
	dust       core.CoordSet
	directions []core.Direction
}

// Option configures room construction.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger sets the diagnostic sink. Construction logs at Info on each
// successful step and at Error right before returning a failure.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrDiscard(o.logger)
	return o
}

// New validates the parts of a room description and assembles a Room.
// Duplicate dust coordinates collapse silently.
func New(bounds, start core.Coord, dust []core.Coord, dirs []core.Direction, opts ...Option) (*Room, error) {
	o := buildOptions(opts)
	v := validator{log: o.logger}

	if err := v.bounds(bounds, 0); err != nil {
		return nil, err
	}
	if err := v.start(start, bounds, 0); err != nil {
		return nil, err
	}

	set := core.NewCoordSet()
	for i, c := range dust {
		if err := v.dust(c, bounds, i, 0); err != nil {
			return nil, err
		}
		set.Add(c)
	}
	v.log.Info("dust positions accepted", "count", set.Len())

	return &Room{
		bounds:     bounds,
		start:      start,
		dust:       set,
		directions: append([]core.Direction(nil), dirs...),
	}, nil
}

// Bounds returns the exclusive upper corner of the room.
func (r *Room) Bounds() core.Coord {
	return r.bounds
}

// Start returns the robot's initial position.
func (r *Room) Start() core.Coord {
	return r.start
}

// Dust returns a copy of the dust set.
func (r *Room) Dust() core.CoordSet {
	return r.dust.Clone()
}

// DustCount returns the number of unique dust cells.
func (r *Room) DustCount() int {
	return r.dust.Len()
}

// HasDust reports whether c holds dust in the initial description.
func (r *Room) HasDust(c core.Coord) bool {
	return r.dust.Has(c)
}

// Directions returns a copy of the direction sequence.
func (r *Room) Directions() []core.Direction {
	return append([]core.Direction(nil), r.directions...)
}

// WithDirections returns a Room with the same bounds, start and dust but a
// different direction sequence. The receiver is left untouched.
func (r *Room) WithDirections(dirs []core.Direction) *Room {
	return &Room{
		bounds:     r.bounds,
		start:      r.start,
		dust:       r.dust,
		directions: append([]core.Direction(nil), dirs...),
	}
}

// String summarizes the room for logs.
func (r *Room) String() string {
	return fmt.Sprintf("room %dx%d start=%v dust=%d directions=%d",
		r.bounds.X, r.bounds.Y, r.start, r.dust.Len(), len(r.directions))
}

// validator holds the checks shared by New and the text parser.
type validator struct {
	log *log.Logger
}

func (v validator) fail(err *Error) *Error {
	v.log.Error(err.Msg, "kind", err.Kind, "line", err.Line)
	return err
}

func (v validator) bounds(b core.Coord, line int) error {
	if b.X < 0 || b.Y < 0 {
		return v.fail(&Error{
			Kind: KindMalformedBounds,
			Line: line,
			Msg:  fmt.Sprintf("room bounds %v must be non-negative", b),
		})
	}
	v.log.Info("room bounds accepted", "bounds", b)
	return nil
}

func (v validator) start(s, bounds core.Coord, line int) error {
	if !s.Within(bounds) {
		return v.fail(&Error{
			Kind: KindInvalidStartPosition,
			Line: line,
			Msg:  fmt.Sprintf("start position %v is outside room %dx%d", s, bounds.X, bounds.Y),
		})
	}
	v.log.Info("start position accepted", "position", s)
	return nil
}

func (v validator) dust(c, bounds core.Coord, index, line int) error {
	if !c.Within(bounds) {
		return v.fail(&Error{
			Kind:  KindInvalidDustPosition,
			Line:  line,
			Index: index,
			Msg:   fmt.Sprintf("dust position %v (entry %d) is outside room %dx%d", c, index, bounds.X, bounds.Y),
		})
	}
	return nil
}

func (v validator) directions(s string, line int) ([]core.Direction, error) {
	dirs := make([]core.Direction, 0, len(s))
	for _, r := range s {
		d, ok := core.ParseDirection(r)
		if !ok {
			return nil, v.fail(&Error{
				Kind: KindInvalidDirectionToken,
				Line: line,
				Char: r,
				Msg:  fmt.Sprintf("unknown direction %q", r),
			})
		}
		dirs = append(dirs, d)
	}
	v.log.Info("directions accepted", "count", len(dirs))
	return dirs, nil
}

// ParseDirections converts a direction string (case-insensitive) into a
// sequence, failing with KindInvalidDirectionToken on the first unknown letter.
func ParseDirections(s string, opts ...Option) ([]core.Direction, error) {
	o := buildOptions(opts)
	return validator{log: o.logger}.directions(s, 0)
}
