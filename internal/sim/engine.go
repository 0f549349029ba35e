// Package sim runs the cleaning robot over a validated room.
//
// An Engine owns the mutable state of one run: the current position, the
// dust still on the floor and the number of cells cleaned so far. Each step
// first collects dust under the robot, then moves one cell and clamps the
// result to the room, so a robot pushing into a wall stays put. The engine
// cannot fail; every position it sees has already been validated.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roomba/internal/core"
	"github.com/vovakirdan/roomba/internal/logging"
	"github.com/vovakirdan/roomba/internal/room"
)

// Result is the outcome of a finished run.
type Result struct {
	Position core.Coord
	Removed  int
}

// String renders the result in the two-line output format.
func (r Result) String() string {
	return fmt.Sprintf("%d %d\n%d", r.Position.X, r.Position.Y, r.Removed)
}

// Engine executes directions against a room. It is not safe for concurrent
// use; create one engine per run.
type Engine struct {
	room      *room.Room
	logger    *log.Logger
	position  core.Coord
	remaining core.CoordSet
	removed   int
	step      int
	trail     []core.Coord
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic sink for the run.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine in the initial state (start, dust, 0).
func New(r *room.Room, opts ...Option) *Engine {
	e := &Engine{
		room:      r,
		position:  r.Start(),
		remaining: r.Dust(),
		trail:     []core.Coord{r.Start()},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrDiscard(e.logger)
	return e
}

// Step applies a single direction: collect dust at the current cell, then
// move and clamp to the room.
func (e *Engine) Step(d core.Direction) {
	if e.remaining.Remove(e.position) {
		e.removed++
		e.logger.Info("removing dust", "position", e.position, "removed", e.removed)
	}

	bounds := e.room.Bounds()
	candidate := e.position.Step(d)
	next := candidate.ClampTo(bounds)
	if next != candidate {
		e.logger.Debug("bumped into wall", "direction", d, "position", next)
	}

	e.position = next
	e.step++
	e.trail = append(e.trail, next)
	e.logger.Info("robot moved", "direction", d, "position", next)
}

// Run applies the room's whole direction sequence and returns the result.
func (e *Engine) Run() Result {
	for _, d := range e.room.Directions() {
		e.Step(d)
	}
	e.logger.Info("finished following directions", "position", e.position, "removed", e.removed)
	return e.Result()
}

// Result returns the current position and removed count.
func (e *Engine) Result() Result {
	return Result{Position: e.position, Removed: e.removed}
}

// Position returns the robot's current cell.
func (e *Engine) Position() core.Coord {
	return e.position
}

// Removed returns how many dust cells have been cleaned.
func (e *Engine) Removed() int {
	return e.removed
}

// Remaining returns a copy of the dust still on the floor.
func (e *Engine) Remaining() core.CoordSet {
	return e.remaining.Clone()
}

// Trail returns every cell the robot has occupied, start first.
func (e *Engine) Trail() []core.Coord {
	return append([]core.Coord(nil), e.trail...)
}

// Room returns the room being simulated.
func (e *Engine) Room() *room.Room {
	return e.room
}

// Run simulates r from its initial state and returns the final result.
func Run(r *room.Room, opts ...Option) Result {
	return New(r, opts...).Run()
}
