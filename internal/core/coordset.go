package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CoordSet is an unordered set of coordinates with O(1) membership and removal.
// The zero value is not usable; create sets with NewCoordSet.
type CoordSet struct {
	s mapset.Set[Coord]
}

// NewCoordSet creates a set holding the given coordinates. Duplicates collapse.
func NewCoordSet(coords ...Coord) CoordSet {
	set := CoordSet{s: mapset.New[Coord]()}
	for _, c := range coords {
		set.s.Put(c)
	}
	return set
}

// Add inserts c. Adding an existing coordinate is a no-op.
func (cs CoordSet) Add(c Coord) {
	cs.s.Put(c)
}

// Has reports whether c is in the set.
func (cs CoordSet) Has(c Coord) bool {
	return cs.s.Has(c)
}

// Remove deletes c and reports whether it was present.
func (cs CoordSet) Remove(c Coord) bool {
	if !cs.s.Has(c) {
		return false
	}
	cs.s.Remove(c)
	return true
}

// Len returns the number of coordinates in the set.
func (cs CoordSet) Len() int {
	return cs.s.Size()
}

// Clone returns an independent copy of the set.
func (cs CoordSet) Clone() CoordSet {
	out := NewCoordSet()
	cs.s.Each(func(c Coord) {
		out.s.Put(c)
	})
	return out
}

// Sorted returns the members ordered by Y, then X.
func (cs CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, cs.Len())
	cs.s.Each(func(c Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
