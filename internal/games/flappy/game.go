// Package flappy implements a Flappy Bird-style level.
// The player keeps a bird airborne and steers it through gaps in
// scrolling pipes.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/resources"
)

// LevelID is the registry ID of the level.
const LevelID = "flappy"

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

const (
	birdX      = 10 // Fixed horizontal position of the bird
	birdW      = 2
	birdH      = 2
	resetDelay = 1.0 // Seconds the crash stays on screen before a restart
)

func init() {
	registry.Register(LevelID, New)
}

// Level builds the flappy world into an engine.
type Level struct {
	env registry.Env
}

// New creates the level for a host environment.
func New(env registry.Env) registry.Level {
	return &Level{env: env}
}

// ID returns the unique identifier for this level.
func (l *Level) ID() string {
	return LevelID
}

// Title returns the display name for this level.
func (l *Level) Title() string {
	return "Flappy Bird"
}

// Build lays out the ground, the bird and the first pipe. The world is the
// size of the surface. Pipe gaps come from the runtime seed mixed with the
// engine epoch: a restart gets a new layout, and two runs with the same
// seed get the same ones.
func (l *Level) Build(e *engine.Engine) error {
	cfg := l.env.Config
	if cfg.Validate() != nil {
		cfg = config.DefaultEngineConfig()
	}
	res := l.env.Resources
	if res == nil {
		var err error
		if res, err = resources.Load(""); err != nil {
			return fmt.Errorf("flappy: %w", err)
		}
	}

	w, h := e.Surface().Size()
	if w <= 0 || h <= 0 {
		w, h = l.env.Runtime.ScreenW, l.env.Runtime.ScreenH
	}
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	e.Camera().SetWorldBounds(float64(w), float64(h))

	s := newSession(e, cfg, res, l.env.Runtime.Seed+int64(e.Epoch()), float64(w), float64(h))

	// The level entity sets the scroll speed before any pipe moves.
	if err := e.AddGameObject(engine.NewEntity("level", 0, 0).MustAddComponent(&Spawner{s: s, untilNext: s.cfg.PipeSpacing})); err != nil {
		return err
	}

	ground := engine.NewEntity("ground", 0, s.groundY).MustAddComponent(
		&kit.Collider{W: s.worldW, H: 1, Solid: true},
		&kit.Shape{W: s.worldW, H: 1, Fill: core.Fill{Rune: GroundChar, Color: core.ColorGreen}},
	)
	if err := e.AddGameObject(ground); err != nil {
		return err
	}

	if err := s.spawnBird(); err != nil {
		return err
	}
	if err := s.spawnPipe(s.worldW); err != nil {
		return err
	}
	return s.addHUD()
}

// session is the state of one build of the level.
type session struct {
	eng        *engine.Engine
	cfg        config.FlappyConfig
	keys       config.KeysConfig
	res        *resources.Manager
	sound      bool
	difficulty *config.DifficultyManager
	pipes      *PipeManager

	worldW, worldH float64
	groundY        float64

	bird    *engine.Entity
	scroll  float64 // Cells per second this frame
	elapsed float64
	score   int
	over    bool
	resetIn float64
}

func newSession(e *engine.Engine, cfg config.EngineConfig, res *resources.Manager, seed int64, worldW, worldH float64) *session {
	s := &session{
		eng:        e,
		cfg:        cfg.Flappy,
		keys:       cfg.Keys,
		res:        res,
		sound:      cfg.Level.Sound,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		worldW:     worldW,
		worldH:     worldH,
		groundY:    worldH - 1,
	}
	s.pipes = NewPipeManager(seed, cfg.Flappy, int(s.groundY))
	s.scroll = s.speed()
	return s
}

// bindings turns the configured keys into engine bindings.
func (s *session) bindings() engine.Bindings {
	return engine.Bindings{
		Pause: config.KeyCodes(s.keys.Pause),
		Reset: config.KeyCodes(s.keys.Reset),
		Quit:  config.KeyCodes(s.keys.Quit),
	}
}

func (s *session) play(name string) {
	if !s.sound {
		return
	}
	s.res.PlaySound(name, s.eng.State())
}

// speed returns the pipe speed for the current difficulty.
func (s *session) speed() float64 {
	return s.difficulty.Speed(s.cfg.PipeSpeed, s.score, s.elapsed)
}

func (s *session) scored() {
	s.score++
	s.eng.Logger().Debug("pipe passed", "score", s.score)
}

// crash ends the run. The world freezes and the level restarts after
// resetDelay.
func (s *session) crash() {
	if s.over {
		return
	}
	s.over = true
	s.resetIn = resetDelay
	s.play("crash")
	s.eng.Logger().Info("bird crashed", "score", s.score, "elapsed", s.elapsed)
}

// Flap lifts the bird on each press of a jump key and ends the run
// when the bird leaves the sky or touches a pipe.
type Flap struct {
	engine.Base
	s       *session
	input   *engine.Input
	body    *kit.Body
	padHeld bool
}

func (f *Flap) Kind() engine.Kind { return engine.KindBehavior }

func (f *Flap) Update(dt float64) {
	if !f.Active() {
		return
	}
	s := f.s
	pad := f.input.IsGamepadButtonDown(core.GamepadA)
	pressed := f.input.Pressed(config.KeyCodes(s.keys.Jump)...) || (pad && !f.padHeld)
	f.padHeld = pad
	if s.over {
		return
	}

	if pressed {
		f.body.VY = s.cfg.FlapImpulse
		s.play("flap")
	}

	owner := f.Owner()
	if owner.Y < 0 || f.body.OnGround || s.hitsPipe(owner) {
		s.crash()
	}
}

func (s *session) spawnBird() error {
	input := engine.NewInput(s.eng.Devices(), s.bindings())
	body := &kit.Body{Gravity: s.cfg.Gravity, MaxFallSpeed: s.cfg.MaxFallSpeed}
	img, _ := s.res.Image("bird")

	bird := engine.NewEntity("bird", birdX, s.worldH/2-birdH/2).MustAddComponent(
		input,
		&Flap{s: s, input: input, body: body},
		body,
		&kit.Collider{W: birdW, H: birdH},
		&kit.Sprite{Image: img, W: birdW, H: birdH, Fallback: core.Fill{Rune: PlayerChar, Color: core.ColorBrightYellow}},
	)
	if err := s.eng.AddGameObject(bird); err != nil {
		return err
	}
	s.bird = bird
	return nil
}

// HUD keeps the score line and the game over banner current.
type HUD struct {
	engine.Base
	s      *session
	status *kit.Text
	banner *kit.Text
}

func (h *HUD) Kind() engine.Kind { return engine.KindBehavior }

func (h *HUD) Update(dt float64) {
	if !h.Active() {
		return
	}
	h.status.SetText(fmt.Sprintf("Score: %d", h.s.score))
	if h.s.over {
		h.banner.SetText(fmt.Sprintf("GAME OVER  Score: %d", h.s.score))
	}
}

func (s *session) addHUD() error {
	status := &kit.Text{Text: "Score: 0", Color: core.ColorBrightWhite}
	banner := &kit.Text{Color: core.ColorBrightRed, Align: core.AlignCenter}

	hud := engine.NewEntity("hud", 2, 0).MustAddComponent(status, &HUD{s: s, status: status, banner: banner})
	hud.Fixed = true
	if err := s.eng.AddGameObject(hud); err != nil {
		return err
	}

	b := engine.NewEntity("banner", s.worldW/2, s.worldH/2).MustAddComponent(banner)
	b.Fixed = true
	return s.eng.AddGameObject(b)
}
