package engine

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// State is the engine's play state.
type State int32

const (
	StatePlaying State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// LevelFunc populates a fresh engine with the level's entities. It runs on
// the first Start and again after every Reset.
type LevelFunc func(e *Engine) error

var errStopped = errors.New("engine stopped")

// DefaultPauseText returns the lines shown on the pause overlay.
func DefaultPauseText() []string {
	return []string{
		"Game Paused",
		"Press P to Resume",
		"Press R to Restart",
		"Press Q to Quit",
	}
}

// Engine owns the live entities, the camera and the render surface, and
// runs the update/draw cycle once per frame.
//
// Engine methods are meant to be called from the goroutine running frames.
// Other goroutines (device callbacks) talk to it through Post and Devices.
type Engine struct {
	surface   Surface
	logger    *log.Logger
	scheduler Scheduler
	devices   *Devices
	camera    *Camera
	level     LevelFunc
	onQuit    func()
	pauseText []string
	maxDelta  float64

	arena   *arena
	epoch   uint32
	intents intentQueue

	state   atomic.Int32
	running atomic.Bool
	stopped atomic.Bool

	built       bool
	inPass      bool
	quitPending bool
	redraw      bool
	overlaid    bool
	lastFrame   time.Duration
	deltaTime   float64
	frames      uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScheduler sets the frame scheduler. The default is a HostScheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithMaxDelta clamps the per-frame delta time. Zero disables clamping.
func WithMaxDelta(d time.Duration) Option {
	return func(e *Engine) {
		e.maxDelta = max(d.Seconds(), 0)
	}
}

// WithWorldBounds sets the area the camera is clamped to.
func WithWorldBounds(width, height float64) Option {
	return func(e *Engine) {
		e.camera.SetWorldBounds(width, height)
	}
}

// WithLevel sets the level builder.
func WithLevel(fn LevelFunc) Option {
	return func(e *Engine) {
		e.level = fn
	}
}

// WithOnQuit registers a hook that runs once after Quit released the
// engine.
func WithOnQuit(fn func()) Option {
	return func(e *Engine) {
		e.onQuit = fn
	}
}

// WithPauseText replaces the pause overlay lines.
func WithPauseText(lines ...string) Option {
	return func(e *Engine) {
		e.pauseText = lines
	}
}

// WithDevices shares a device hub with the host.
func WithDevices(d *Devices) Option {
	return func(e *Engine) {
		if d != nil {
			e.devices = d
		}
	}
}

// New creates an engine drawing to surface. A nil surface gets an empty
// core.Screen.
func New(surface Surface, opts ...Option) *Engine {
	if surface == nil {
		surface = core.NewScreen(0, 0)
	}
	w, h := surface.Size()

	e := &Engine{
		surface:   surface,
		logger:    log.New(io.Discard),
		scheduler: &HostScheduler{},
		devices:   NewDevices(),
		camera:    NewCamera(float64(w), float64(h)),
		pauseText: DefaultPauseText(),
		epoch:     1,
	}
	e.arena = newArena(e.epoch)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start builds the level (first call only), switches to playing and
// requests the first frame.
func (e *Engine) Start() error {
	if e.stopped.Load() {
		return fmt.Errorf("engine: start: %w: %w", errStopped, ErrInvalidOperation)
	}
	if e.running.Load() {
		return fmt.Errorf("engine: start: already running: %w", ErrInvalidOperation)
	}
	if !e.built {
		e.built = true
		if err := e.buildLevel(); err != nil {
			return err
		}
	}
	e.state.Store(int32(StatePlaying))
	e.running.Store(true)
	e.logger.Info("engine started", "entities", e.arena.len())
	e.scheduler.RequestFrame(e.Frame)
	return nil
}

// Frame runs one frame at host time ts: compute the delta, apply queued
// intents, update when playing, draw, and request the next frame while
// running.
func (e *Engine) Frame(ts time.Duration) {
	if e.stopped.Load() {
		return
	}

	dt := (ts - e.lastFrame).Seconds()
	if dt < 0 {
		dt = 0
	}
	if e.maxDelta > 0 && dt > e.maxDelta {
		dt = e.maxDelta
	}
	e.lastFrame = ts
	e.deltaTime = dt
	e.frames++

	e.applyIntents()
	if e.stopped.Load() {
		return
	}

	if e.State() == StatePlaying {
		e.Update(dt)
	}
	e.Draw()

	if e.running.Load() {
		e.scheduler.RequestFrame(e.Frame)
	}
}

// Update advances every live entity in insertion order, then the camera,
// then removes entities marked during or before the pass. It does nothing
// while paused.
func (e *Engine) Update(dt float64) {
	if e.stopped.Load() || e.State() == StatePaused {
		return
	}
	e.arena.compact()

	e.inPass = true
	e.arena.each(func(ent *Entity) bool {
		e.invoke(ent, "update", func() { ent.Update(dt) })
		return !e.quitPending
	})
	if !e.quitPending {
		e.camera.Update()
	}
	e.sweep()
	e.inPass = false

	e.finishPass()
}

// Draw renders the world through the camera, or the pause overlay while
// paused. The overlay is drawn once over the last rendered world; later
// paused frames leave the surface as it is.
func (e *Engine) Draw() {
	if e.stopped.Load() {
		return
	}

	e.inPass = true
	if e.State() == StatePaused {
		if e.redraw {
			e.drawWorld()
		}
		if !e.overlaid {
			e.drawPauseOverlay()
		}
	} else {
		e.drawWorld()
	}
	e.inPass = false

	e.finishPass()
}

func (e *Engine) drawWorld() {
	s := e.surface
	s.Clear()

	var fixed []*Entity
	s.Save()
	cx, cy := e.camera.Offset()
	s.Translate(-cx, -cy)
	e.arena.each(func(ent *Entity) bool {
		if ent.Fixed {
			fixed = append(fixed, ent)
			return true
		}
		e.invoke(ent, "draw", func() { ent.Draw(s) })
		return !e.quitPending
	})
	s.Restore()

	for _, ent := range fixed {
		if e.quitPending {
			break
		}
		e.invoke(ent, "draw", func() { ent.Draw(s) })
	}
	e.redraw = false
	e.overlaid = false
}

// drawPauseOverlay shades whatever is on the surface and centers the pause
// text on top of it.
func (e *Engine) drawPauseOverlay() {
	s := e.surface
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), core.Fill{Dim: true})

	top := float64(h)/2 - float64(len(e.pauseText))/2
	for i, line := range e.pauseText {
		s.FillText(float64(w)/2, top+float64(i), line, core.ColorBrightWhite, core.AlignCenter)
	}
	e.overlaid = true
}

// invoke runs one entity's update or draw, logging a panic instead of
// letting it abort the pass.
func (e *Engine) invoke(ent *Entity, phase string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("entity failed", "entity", ent.Name, "handle", ent.handle, "phase", phase, "err", r)
		}
	}()
	fn()
}

func (e *Engine) sweep() {
	for _, ent := range e.arena.sweep() {
		if e.camera.Target() == ent {
			e.camera.Unfollow()
		}
		ent.destroy()
		e.logger.Debug("entity removed", "entity", ent.Name, "handle", ent.handle)
	}
}

func (e *Engine) finishPass() {
	if e.quitPending {
		e.release()
	}
}

// PauseGame switches from playing to paused.
func (e *Engine) PauseGame() error {
	if e.stopped.Load() {
		return fmt.Errorf("engine: pause: %w: %w", errStopped, ErrInvalidOperation)
	}
	if e.inPass {
		if e.State() == StatePaused {
			return fmt.Errorf("engine: pause: already paused: %w", ErrInvalidOperation)
		}
		e.intents.push(IntentPause)
		return nil
	}
	return e.pause()
}

// ResumeGame switches from paused to playing.
func (e *Engine) ResumeGame() error {
	if e.stopped.Load() {
		return fmt.Errorf("engine: resume: %w: %w", errStopped, ErrInvalidOperation)
	}
	if e.inPass {
		if e.State() == StatePlaying {
			return fmt.Errorf("engine: resume: not paused: %w", ErrInvalidOperation)
		}
		e.intents.push(IntentResume)
		return nil
	}
	return e.resume()
}

// TogglePause flips between playing and paused. It does nothing after
// Quit.
func (e *Engine) TogglePause() {
	if e.stopped.Load() {
		return
	}
	if e.inPass {
		e.intents.push(IntentTogglePause)
		return
	}
	e.toggle()
}

func (e *Engine) pause() error {
	if !e.state.CompareAndSwap(int32(StatePlaying), int32(StatePaused)) {
		return fmt.Errorf("engine: pause: already paused: %w", ErrInvalidOperation)
	}
	e.logger.Debug("paused", "frame", e.frames)
	return nil
}

func (e *Engine) resume() error {
	if !e.state.CompareAndSwap(int32(StatePaused), int32(StatePlaying)) {
		return fmt.Errorf("engine: resume: not paused: %w", ErrInvalidOperation)
	}
	e.logger.Debug("resumed", "frame", e.frames)
	return nil
}

func (e *Engine) toggle() {
	if e.State() == StatePaused {
		_ = e.resume()
	} else {
		_ = e.pause()
	}
}

// Reset tears the world down and rebuilds the level: every entity is
// destroyed, handles from before the reset stop resolving, queued intents
// are dropped, the camera returns to the origin and the engine plays again.
func (e *Engine) Reset() error {
	if e.stopped.Load() {
		return fmt.Errorf("engine: reset: %w: %w", errStopped, ErrInvalidOperation)
	}
	if e.inPass {
		e.intents.push(IntentReset)
		return nil
	}
	return e.reset()
}

func (e *Engine) reset() error {
	e.teardown()
	e.epoch++
	e.arena = newArena(e.epoch)
	e.camera.reset()
	e.intents.clear()
	e.state.Store(int32(StatePlaying))
	e.redraw = false
	e.overlaid = false
	e.logger.Info("engine reset", "epoch", e.epoch)
	return e.buildLevel()
}

// Quit stops the engine for good and releases the surface. Called during a
// pass it stops the pass at the current entity; the release happens when
// the pass returns.
func (e *Engine) Quit() {
	if e.stopped.Load() {
		return
	}
	e.running.Store(false)
	if e.inPass {
		e.quitPending = true
		return
	}
	e.release()
}

func (e *Engine) release() {
	if !e.stopped.CompareAndSwap(false, true) {
		return
	}
	e.running.Store(false)
	e.quitPending = false
	e.teardown()
	e.intents.clear()

	if c, ok := e.surface.(io.Closer); ok {
		if err := c.Close(); err != nil {
			e.logger.Warn("close surface", "err", err)
		}
	}
	e.logger.Info("engine stopped", "frames", e.frames)
	if e.onQuit != nil {
		e.onQuit()
	}
}

func (e *Engine) teardown() {
	for _, ent := range e.arena.entities() {
		ent.destroy()
	}
	e.camera.Unfollow()
}

func (e *Engine) buildLevel() error {
	if e.level == nil {
		return nil
	}
	if err := e.level(e); err != nil {
		return fmt.Errorf("engine: build level: %w", err)
	}
	return nil
}

// applyIntents drains the queue in order. Reset and Quit end the drain:
// whatever was queued behind them belonged to the discarded world.
func (e *Engine) applyIntents() {
	for _, in := range e.intents.drain() {
		if (in == IntentMenuReset || in == IntentMenuQuit) && e.State() != StatePaused {
			e.logger.Debug("intent ignored", "intent", in, "state", e.State())
			continue
		}

		var err error
		switch in {
		case IntentPause:
			err = e.pause()
		case IntentResume:
			err = e.resume()
		case IntentTogglePause:
			e.toggle()
		case IntentReset, IntentMenuReset:
			if err := e.reset(); err != nil {
				e.logger.Error("reset failed", "err", err)
			}
			return
		case IntentQuit, IntentMenuQuit:
			e.release()
			return
		}
		if err != nil {
			e.logger.Debug("intent ignored", "intent", in, "err", err)
		}
	}
}

// Post queues an intent for the start of the next frame. It is safe to
// call from any goroutine and returns false once the engine has stopped.
func (e *Engine) Post(in Intent) bool {
	if in == IntentNone || e.stopped.Load() {
		return false
	}
	e.intents.push(in)
	return true
}

// AddGameObject registers ent. It is visible to the very next update and
// draw; added during an update pass, it is drawn this frame and updated
// from the next.
func (e *Engine) AddGameObject(ent *Entity) error {
	switch {
	case ent == nil:
		return fmt.Errorf("engine: add nil entity: %w", ErrInvalidOperation)
	case e.stopped.Load():
		return fmt.Errorf("engine: add %q: %w: %w", ent.Name, errStopped, ErrInvalidOperation)
	case ent.destroyed:
		return fmt.Errorf("engine: add %q: entity was destroyed: %w", ent.Name, ErrInvalidOperation)
	}
	if owner := ent.Engine(); owner != nil {
		if owner == e {
			return fmt.Errorf("engine: add %q: already registered: %w", ent.Name, ErrInvalidOperation)
		}
		return fmt.Errorf("engine: add %q: owned by another engine: %w", ent.Name, ErrInvalidOperation)
	}

	ent.handle = e.arena.insert(ent)
	ent.removing = false
	ent.engine.Store(e)
	return nil
}

// RemoveGameObject marks ent for removal. It still receives its update in
// the current (or next) pass and is dropped when that pass ends.
func (e *Engine) RemoveGameObject(ent *Entity) error {
	if ent == nil {
		return fmt.Errorf("engine: remove nil entity: %w", ErrInvalidOperation)
	}
	if ent.Engine() != e {
		return fmt.Errorf("engine: remove %q: not registered: %w", ent.Name, ErrInvalidOperation)
	}
	if !e.arena.mark(ent.handle) {
		return fmt.Errorf("engine: remove %q: already removed: %w", ent.Name, ErrInvalidOperation)
	}
	return nil
}

// Resize changes the surface size (when the surface supports it) and the
// camera viewport. A paused engine redraws the world under the overlay on
// its next frame.
func (e *Engine) Resize(width, height int) {
	if r, ok := e.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	e.camera.SetViewport(float64(width), float64(height))
	e.redraw = true
}

// State returns the current play state. Safe from any goroutine.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Running reports whether the engine is started and not stopped.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Stopped reports whether Quit has released the engine.
func (e *Engine) Stopped() bool {
	return e.stopped.Load()
}

// DeltaTime returns the delta of the last frame in seconds.
func (e *Engine) DeltaTime() float64 {
	return e.deltaTime
}

// Frames returns the number of frames run.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Epoch returns the number of worlds built so far, starting at 1.
func (e *Engine) Epoch() uint32 {
	return e.epoch
}

func (e *Engine) Camera() *Camera {
	return e.camera
}

func (e *Engine) Devices() *Devices {
	return e.devices
}

func (e *Engine) Surface() Surface {
	return e.surface
}

func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// GameObjects returns the live entities in insertion order, including ones
// marked for removal that have not been dropped yet.
func (e *Engine) GameObjects() []*Entity {
	return e.arena.entities()
}

// Len returns the number of live entities.
func (e *Engine) Len() int {
	return e.arena.len()
}

// Find returns the first live entity with the given name.
func (e *Engine) Find(name string) (*Entity, bool) {
	var found *Entity
	e.arena.each(func(ent *Entity) bool {
		if ent.Name == name {
			found = ent
			return false
		}
		return true
	})
	return found, found != nil
}

// Entity resolves a handle. Handles of removed entities and handles from
// before a Reset do not resolve.
func (e *Engine) Entity(h Handle) (*Entity, bool) {
	return e.arena.get(h)
}
