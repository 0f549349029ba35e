// Package render draws a room and the robot's progress as a text map.
package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/roomba/internal/core"
	"github.com/vovakirdan/roomba/internal/room"
	"github.com/vovakirdan/roomba/internal/sim"
)

// Map glyphs.
const (
	GlyphFloor   = ' '
	GlyphTrail   = '.'
	GlyphDust    = '*'
	GlyphCleaned = 'o'
	GlyphStart   = 'S'
	GlyphRobot   = 'R'
)

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorFloor:   lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorTrail:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorDust:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCleaned: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorRobot:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// Options controls what the map shows.
type Options struct {
	Trail bool // mark every cell the robot passed through
}

// MaxSide is the largest room width or height Map draws.
const MaxSide = 256

// ErrTooLarge is returned by Map for rooms wider or taller than MaxSide.
var ErrTooLarge = errors.New("render: room too large to draw")

// Fits reports whether a room with the given bounds can be drawn.
func Fits(bounds core.Coord) bool {
	return bounds.X <= MaxSide && bounds.Y <= MaxSide
}

// Map draws the room inside a box with north at the top. Cell (x, y) of the
// room lands at screen column x+1 and row bounds.Y-y.
func Map(r *room.Room, e *sim.Engine, opts Options) (*core.Screen, error) {
	bounds := r.Bounds()
	if !Fits(bounds) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, bounds.X, bounds.Y, MaxSide, MaxSide)
	}
	s := core.NewScreen(bounds.X+2, bounds.Y+2)
	s.DrawBox(core.NewRect(0, 0, bounds.X+2, bounds.Y+2), core.ColorWall)

	put := func(c core.Coord, g rune, col core.Color) {
		s.Put(c.X+1, bounds.Y-c.Y, g, col)
	}

	if opts.Trail {
		for _, c := range e.Trail() {
			put(c, GlyphTrail, core.ColorTrail)
		}
	}

	remaining := e.Remaining()
	for _, c := range r.Dust().Sorted() {
		if remaining.Has(c) {
			put(c, GlyphDust, core.ColorDust)
		} else {
			put(c, GlyphCleaned, core.ColorCleaned)
		}
	}

	put(r.Start(), GlyphStart, core.ColorStart)
	put(e.Position(), GlyphRobot, core.ColorRobot)
	return s, nil
}

// String converts a Screen to text. When styled is set, adjacent cells with
// the same color are grouped into one lipgloss run.
func String(s *core.Screen, styled bool) string {
	if !styled {
		return s.String()
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Cell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Cell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorFloor]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Legend describes the glyphs used by Map.
func Legend() string {
	return "S start  R robot  * dust  o cleaned  . trail"
}
