package engine

import "github.com/vovakirdan/tui-engine/internal/core"

// Surface is the immediate-mode drawing target. Coordinates are world
// units; Translate shifts everything drawn after it until the matching
// Restore. core.Screen is the terminal implementation.
type Surface interface {
	Size() (w, h int)
	Clear()
	Save()
	Translate(dx, dy float64)
	Restore()
	FillRect(x, y, w, h float64, fill core.Fill)
	FillText(x, y float64, text string, color core.Color, align core.Align)
	DrawImage(img *core.Image, x, y float64)
}

// Resizer is implemented by surfaces the engine can resize itself.
type Resizer interface {
	Resize(w, h int)
}
