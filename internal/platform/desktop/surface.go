// Package desktop hosts the engine in an Ebiten window. World units stay
// terminal cells; the surface scales every cell to a CellW x CellH pixel
// block.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// Cell size in pixels. The debug font glyphs are 6x16.
const (
	CellW = 8
	CellH = 16
)

// dimAlpha is the alpha of the shade drawn by a dimming fill.
const dimAlpha = 0x90

// Surface draws into an offscreen image sized in cells. The host blits it
// to the window in Draw.
type Surface struct {
	canvas *ebiten.Image
	cols   int
	rows   int

	offX, offY float64
	saved      [][2]float64
}

// NewSurface creates a surface of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Size returns the size in cells.
func (s *Surface) Size() (int, int) {
	return s.cols, s.rows
}

// Resize reallocates the canvas.
func (s *Surface) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if s.canvas != nil && cols == s.cols && rows == s.rows {
		return
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
	}
	s.cols, s.rows = cols, rows
	s.canvas = ebiten.NewImage(cols*CellW, rows*CellH)
}

// Image returns the canvas.
func (s *Surface) Image() *ebiten.Image {
	return s.canvas
}

func (s *Surface) Clear() {
	s.canvas.Fill(color.Black)
	s.offX, s.offY = 0, 0
	s.saved = s.saved[:0]
}

func (s *Surface) Save() {
	s.saved = append(s.saved, [2]float64{s.offX, s.offY})
}

func (s *Surface) Translate(dx, dy float64) {
	s.offX += dx
	s.offY += dy
}

func (s *Surface) Restore() {
	if n := len(s.saved); n > 0 {
		s.offX, s.offY = s.saved[n-1][0], s.saved[n-1][1]
		s.saved = s.saved[:n-1]
	}
}

func (s *Surface) FillRect(x, y, w, h float64, fill core.Fill) {
	px, py, pw, ph := pixelRect(x+s.offX, y+s.offY, w, h)
	if pw <= 0 || ph <= 0 {
		return
	}
	switch {
	case fill.Rune == 0 && fill.Dim:
		vector.DrawFilledRect(s.canvas, px, py, pw, ph, color.RGBA{A: dimAlpha}, false)
	case fill.Rune == 0 || fill.Rune == ' ':
		vector.DrawFilledRect(s.canvas, px, py, pw, ph, color.Black, false)
	default:
		vector.DrawFilledRect(s.canvas, px, py, pw, ph, cellColor(fill.Color, fill.Dim), false)
	}
}

func (s *Surface) FillText(x, y float64, text string, _ core.Color, align core.Align) {
	n := float64(len([]rune(text)))
	switch align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	px, py, _, _ := pixelRect(x+s.offX, y+s.offY, 0, 0)
	// The debug font only prints white; the text color is not available.
	ebitenutil.DebugPrintAt(s.canvas, text, int(px), int(py))
}

func (s *Surface) DrawImage(img *core.Image, x, y float64) {
	if img == nil {
		return
	}
	fill := cellColor(img.Color, false)
	for dy, row := range img.Rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				px, py, pw, ph := pixelRect(x+s.offX+float64(dx), y+s.offY+float64(dy), 1, 1)
				vector.DrawFilledRect(s.canvas, px, py, pw, ph, fill, false)
			}
			dx++
		}
	}
}

// pixelRect converts a cell rectangle to pixels, snapping the origin to
// the cell grid the same way core.Screen does.
func pixelRect(x, y, w, h float64) (px, py, pw, ph float32) {
	cx, cy := core.Snap(x), core.Snap(y)
	return float32(cx * CellW), float32(cy * CellH), float32(core.Snap(w) * CellW), float32(core.Snap(h) * CellH)
}

// cellColor maps a core color to RGBA, halving the brightness of dimmed
// cells. ColorDefault draws light gray.
func cellColor(c core.Color, dim bool) color.RGBA {
	r, g, b := c.RGB()
	if c == core.ColorDefault {
		r, g, b = 0xc0, 0xc0, 0xc0
	}
	if dim {
		r, g, b = r/2, g/2, b/2
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
