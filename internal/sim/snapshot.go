package sim

import "github.com/vovakirdan/roomba/internal/core"

// Snapshot captures the engine state for determinism testing and replay.
type Snapshot struct {
	Step      int
	Position  core.Coord
	Removed   int
	Remaining []core.Coord // sorted by Y, then X
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Step:      e.step,
		Position:  e.position,
		Removed:   e.removed,
		Remaining: e.remaining.Sorted(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Step != other.Step || s.Position != other.Position || s.Removed != other.Removed {
		return false
	}
	if len(s.Remaining) != len(other.Remaining) {
		return false
	}
	for i := range s.Remaining {
		if s.Remaining[i] != other.Remaining[i] {
			return false
		}
	}
	return true
}
