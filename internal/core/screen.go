package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
	Dim   bool // Rendered faint, used for the pause overlay
}

var blankCell = Cell{Rune: ' '}

// Fill describes how FillRect paints cells.
// A zero Rune keeps the existing character, so Fill{Dim: true} shades
// whatever is already on screen.
type Fill struct {
	Rune  rune
	Color Color
	Dim   bool
}

// Align selects how FillText positions text relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Screen is a 2D character buffer and the terminal render surface.
// Drawing calls take world coordinates and apply the current translation,
// which Save/Translate/Restore manage as a stack like a canvas context.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	offX, offY float64
	stack      [][2]float64
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells. The translation stack is
// left alone.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Save pushes the current translation.
func (s *Screen) Save() {
	s.stack = append(s.stack, [2]float64{s.offX, s.offY})
}

// Translate shifts all subsequent drawing by (dx, dy).
func (s *Screen) Translate(dx, dy float64) {
	s.offX += dx
	s.offY += dy
}

// Restore pops the translation pushed by the matching Save.
// An unmatched Restore resets to no translation.
func (s *Screen) Restore() {
	n := len(s.stack)
	if n == 0 {
		s.offX, s.offY = 0, 0
		return
	}
	top := s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.offX, s.offY = top[0], top[1]
}

// Set places a rune at the given cell, ignoring translation.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a full cell at the given position, ignoring translation.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// FillRect paints a rectangle given in world units.
func (s *Screen) FillRect(x, y, w, h float64, f Fill) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := Snap(x+s.offX), Snap(y+s.offY)
	x1, y1 := Snap(x+w+s.offX), Snap(y+h+s.offY)
	// Anything with a positive size covers at least one cell.
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = Min(x1, s.width), Min(y1, s.height)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c := &s.cells[cy][cx]
			if f.Rune != 0 {
				c.Rune = f.Rune
				c.Color = f.Color
			}
			c.Dim = f.Dim
		}
	}
}

// FillText writes a single line of text. With AlignCenter, x is the center
// of the text; with AlignRight, x is one past its last character.
func (s *Screen) FillText(x, y float64, text string, color Color, align Align) {
	n := float64(utf8.RuneCountInString(text))
	switch align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	cx, cy := Snap(x+s.offX), Snap(y+s.offY)
	i := 0
	for _, r := range text {
		s.SetCell(cx+i, cy, Cell{Rune: r, Color: color})
		i++
	}
}

// DrawImage blits a sprite with its top-left corner at (x, y).
// A nil image draws nothing.
func (s *Screen) DrawImage(img *Image, x, y float64) {
	if img == nil {
		return
	}
	cx, cy := Snap(x+s.offX), Snap(y+s.offY)
	for dy, row := range img.Rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				s.SetCell(cx+dx, cy+dy, Cell{Rune: r, Color: img.Color})
			}
			dx++
		}
	}
}

// DrawBox draws a box outline using box-drawing characters, in cells.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1
	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	for cx := x + 1; cx < right; cx++ {
		s.Set(cx, y, '─')
		s.Set(cx, bottom, '─')
	}
	for cy := y + 1; cy < bottom; cy++ {
		s.Set(x, cy, '│')
		s.Set(right, cy, '│')
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
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
