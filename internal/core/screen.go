package core

import (
	"strings"
)

// Cell is a single character on a Screen with its color role.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorFloor}

// Screen is a fixed-size character buffer addressed by column and row,
// row 0 at the top.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen filled with floor cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blank
		}
		s.cells[y] = row
	}
	return s
}

func (s *Screen) Width() int { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Put writes r with color c at column x, row y. Writes outside the
// buffer are dropped.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y][x] = Cell{Rune: r, Color: c}
	}
}

// Cell returns the cell at column x, row y, or a blank floor cell outside
// the buffer.
func (s *Screen) Cell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	left, top := r.X, r.Y
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.Put(x, top, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		s.Put(left, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(left, top, '┌', c)
	s.Put(right, top, '┐', c)
	s.Put(left, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text. Rows outside the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, rows separated by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
