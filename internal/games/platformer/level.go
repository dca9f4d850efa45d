// Package platformer implements a side-scrolling platform level: run and
// jump across ledges, collect every coin before the timer runs out, and
// avoid the patrolling enemy.
package platformer

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
const LevelID = "platformer"

// Visual characters for rendering
const (
	WallChar  = '█'
	LedgeChar = '═'
	CoinChar  = '$'
)

// Layout is in cells. Ledges step up by five cells, within reach of the
// default jump.
var (
	ledges = []core.Rect{
		{X: 15, Y: 33, W: 20, H: 1},
		{X: 40, Y: 28, W: 20, H: 1},
		{X: 65, Y: 23, W: 25, H: 1},
		{X: 95, Y: 28, W: 30, H: 1},
		{X: 130, Y: 33, W: 20, H: 1},
		{X: 150, Y: 28, W: 20, H: 1},
		{X: 172, Y: 23, W: 20, H: 1},
	}
	coins = [][2]float64{
		{25, 31},
		{77, 21},
		{182, 21},
	}
)

const (
	defaultWorldW = 200
	defaultWorldH = 40
	groundHeight  = 2
	playerW       = 3
	playerH       = 3
	enemyW        = 3
	enemyH        = 2
	enemyMinX     = 60
	enemyMaxX     = 120
	maxFallSpeed  = 40
)

func init() {
	registry.Register(LevelID, New)
}

// Level builds the platformer world into an engine.
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
	return "Coin Run"
}

// Build adds the world, the player, the enemy, coins and the HUD. Every
// call starts from scratch: the timer and coin count live in a fresh
// session.
func (l *Level) Build(e *engine.Engine) error {
	cfg := l.env.Config
	if cfg.Validate() != nil {
		cfg = config.DefaultEngineConfig()
	}
	res := l.env.Resources
	if res == nil {
		var err error
		if res, err = resources.Load(""); err != nil {
			return fmt.Errorf("platformer: %w", err)
		}
	}

	worldW, worldH := cfg.Camera.WorldWidth, cfg.Camera.WorldHeight
	if worldW <= 0 || worldH <= 0 {
		worldW, worldH = defaultWorldW, defaultWorldH
	}
	e.Camera().SetWorldBounds(worldW, worldH)

	s := newSession(e, cfg, res, l.env.Runtime, worldW, worldH)
	groundY := worldH - groundHeight

	// The level entity runs the timer before anything else moves.
	if err := e.AddGameObject(engine.NewEntity("level", 0, 0).MustAddComponent(&Timer{s: s})); err != nil {
		return err
	}

	walls := []core.Rect{
		{X: 0, Y: groundY, W: worldW, H: groundHeight}, // ground
		{X: 0, Y: 0, W: worldW, H: 1},                  // ceiling
		{X: 0, Y: 0, W: 1, H: worldH},                  // left wall
		{X: worldW - 1, Y: 0, W: 1, H: worldH},         // right wall
	}
	for i, r := range walls {
		if err := addPlatform(e, fmt.Sprintf("wall-%d", i), r, core.Fill{Rune: WallChar, Color: core.ColorGray}); err != nil {
			return err
		}
	}
	for i, r := range ledges {
		if err := addPlatform(e, fmt.Sprintf("ledge-%d", i), r, core.Fill{Rune: LedgeChar, Color: core.ColorGreen}); err != nil {
			return err
		}
	}

	coinImg, _ := res.Image("coin")
	for i, pos := range coins {
		coin := engine.NewEntity(fmt.Sprintf("coin-%d", i), pos[0], pos[1]).MustAddComponent(
			&kit.Collider{W: 1, H: 1},
			&kit.Sprite{Image: coinImg, W: 1, H: 1, Fallback: core.Fill{Rune: CoinChar, Color: core.ColorBrightYellow}},
			&Coin{s: s},
		)
		if err := e.AddGameObject(coin); err != nil {
			return err
		}
	}
	s.total = min(cfg.Level.CollectiblesToWin, len(coins))

	enemyImg, _ := res.Image("enemy")
	enemy := engine.NewEntity("enemy", enemyMinX, groundY-enemyH).MustAddComponent(
		&kit.Collider{W: enemyW, H: enemyH},
		&Patrol{s: s, MinX: enemyMinX, MaxX: enemyMaxX, Dir: 1},
		&kit.Sprite{Image: enemyImg, W: enemyW, H: enemyH, Fallback: core.Fill{Rune: 'M', Color: core.ColorBrightRed}},
	)
	if err := e.AddGameObject(enemy); err != nil {
		return err
	}

	player, err := s.spawnPlayer(groundY)
	if err != nil {
		return err
	}
	e.Camera().Follow(player)

	return s.addHUD()
}

func addPlatform(e *engine.Engine, name string, r core.Rect, fill core.Fill) error {
	ent := engine.NewEntity(name, r.X, r.Y).MustAddComponent(
		&kit.Collider{W: r.W, H: r.H, Solid: true},
		&kit.Shape{W: r.W, H: r.H, Fill: fill},
	)
	return e.AddGameObject(ent)
}
