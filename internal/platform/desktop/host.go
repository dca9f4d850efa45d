package desktop

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/registry"
)

// Game implements ebiten.Game around one engine. Ebiten calls Layout,
// Update and Draw from one goroutine, so the engine is only touched there.
type Game struct {
	eng     *engine.Engine
	sched   *engine.HostScheduler
	devices *engine.Devices
	surface *Surface
	logger  *log.Logger
	origin  time.Time

	keys    []ebiten.Key
	pads    []ebiten.GamepadID
	known   map[ebiten.GamepadID]struct{}
	started bool
}

// NewGame creates the desktop host for level. The level should have been
// created with env.
func NewGame(level registry.Level, env registry.Env, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	rt := env.Runtime
	surface := NewSurface(rt.ScreenW, rt.ScreenH)
	sched := &engine.HostScheduler{}
	devices := engine.NewDevices()
	devices.SetGamepadSource(engine.GamepadSourceFunc(pollGamepad))

	eng := registry.NewEngine(level, surface, env, logger,
		engine.WithScheduler(sched),
		engine.WithDevices(devices),
	)
	return &Game{
		eng:     eng,
		sched:   sched,
		devices: devices,
		surface: surface,
		logger:  logger,
		known:   make(map[ebiten.GamepadID]struct{}),
	}
}

// Engine returns the hosted engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Update forwards input events and runs a frame. It ends the game loop
// once the engine stopped.
func (g *Game) Update() error {
	if !g.started {
		g.started = true
		g.origin = time.Now()
		if err := g.eng.Start(); err != nil {
			return err
		}
	}

	g.forwardKeys()
	g.forwardGamepads()
	g.sched.Fire(time.Since(g.origin))

	if g.eng.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) forwardKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := keyCode(k); ok {
			g.devices.KeyDown(code)
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if code, ok := keyCode(k); ok {
			g.devices.KeyUp(code)
		}
	}
}

// forwardGamepads reports connects and disconnects. A disconnected pad is
// gone from ebiten.AppendGamepadIDs, so disconnects are looked up among the
// pads seen connecting.
func (g *Game) forwardGamepads() {
	g.pads = inpututil.AppendJustConnectedGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		g.logger.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(id))
		g.known[id] = struct{}{}
		g.devices.GamepadConnected(int(id))
	}
	for _, id := range disconnected(g.known, inpututil.IsGamepadJustDisconnected) {
		g.logger.Info("gamepad disconnected", "id", id)
		g.devices.GamepadDisconnected(int(id))
	}
}

// disconnected drops the pads that gone reports from known and returns
// them in ID order.
func disconnected(known map[ebiten.GamepadID]struct{}, gone func(ebiten.GamepadID) bool) []ebiten.GamepadID {
	var out []ebiten.GamepadID
	for id := range known {
		if gone(id) {
			delete(known, id)
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// Draw blits the last frame to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
}

// Layout sizes the world in whole cells and resizes the engine when the
// window changed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols, rows := max(outsideWidth/CellW, 1), max(outsideHeight/CellH, 1)
	if w, h := g.surface.Size(); w != cols || h != rows {
		g.eng.Resize(cols, rows)
	}
	return cols * CellW, rows * CellH
}

// Run opens a window for level and blocks until the engine stops or the
// window is closed.
func Run(level registry.Level, env registry.Env, logger *log.Logger) error {
	rt := &env.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	g := NewGame(level, env, logger)

	ebiten.SetWindowSize(rt.ScreenW*CellW, rt.ScreenH*CellH)
	ebiten.SetWindowTitle(fmt.Sprintf("tengine - %s", level.Title()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	err := ebiten.RunGame(g)
	// Closing the window ends RunGame without going through Quit.
	g.eng.Quit()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
