package core

import "unicode"

// Direction is one of the four cardinal moves the robot understands.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions returns all cardinal directions in N, S, E, W order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: 1}
	case South:
		return Coord{X: 0, Y: -1}
	case East:
		return Coord{X: 1, Y: 0}
	case West:
		return Coord{X: -1, Y: 0}
	default:
		panic("core: invalid direction")
	}
}

// Letter returns the single upper-case letter used in input files.
func (d Direction) Letter() rune {
	switch d {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	default:
		return '?'
	}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	return string(d.Letter())
}

// ParseDirection maps a letter (case-insensitive) to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch unicode.ToUpper(r) {
	case 'N':
		return North, true
	case 'S':
		return South, true
	case 'E':
		return East, true
	case 'W':
		return West, true
	default:
		return 0, false
	}
}

// FormatDirections renders a sequence back to its letter form.
func FormatDirections(dirs []Direction) string {
	buf := make([]rune, len(dirs))
	for i, d := range dirs {
		buf[i] = d.Letter()
	}
	return string(buf)
}
