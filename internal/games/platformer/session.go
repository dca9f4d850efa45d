package platformer

import (
	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
	"github.com/vovakirdan/tui-engine/internal/resources"
)

// session is the state of one build of the level. Reset discards it along
// with the entities.
type session struct {
	eng        *engine.Engine
	cfg        config.LevelConfig
	keys       config.KeysConfig
	res        *resources.Manager
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	worldW     float64
	worldH     float64

	player         *engine.Entity
	spawnX, spawnY float64

	remaining float64 // Seconds left on the timer
	elapsed   float64
	collected int
	total     int // Coins needed to win
	won       bool
	deaths    int
}

func newSession(e *engine.Engine, cfg config.EngineConfig, res *resources.Manager, rt core.RuntimeConfig, worldW, worldH float64) *session {
	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	return &session{
		eng:        e,
		cfg:        cfg.Level,
		keys:       cfg.Keys,
		res:        res,
		difficulty: difficulty,
		runtime:    rt,
		worldW:     worldW,
		worldH:     worldH,
		remaining:  difficulty.TimeLimit(cfg.Level.TimeLimit),
	}
}

// bindings turns the configured keys into engine bindings.
func (s *session) bindings() engine.Bindings {
	return engine.Bindings{
		Pause: config.KeyCodes(s.keys.Pause),
		Reset: config.KeyCodes(s.keys.Reset),
		Quit:  config.KeyCodes(s.keys.Quit),
	}
}

// play plays a cue through the resource manager, gated by engine state.
func (s *session) play(name string) {
	if !s.cfg.Sound {
		return
	}
	s.res.PlaySound(name, s.eng.State())
}

func (s *session) collect() {
	s.collected++
	s.play("collect")
	if !s.won && s.collected >= s.total {
		s.won = true
		s.eng.Logger().Info("level won", "coins", s.collected, "time_left", s.remaining)
	}
}

// respawn puts the player back at the start.
func (s *session) respawn() {
	if s.player == nil {
		return
	}
	s.deaths++
	s.player.X, s.player.Y = s.spawnX, s.spawnY
	if body, ok := engine.ComponentOf[*kit.Body](s.player, engine.KindBody); ok {
		body.VX, body.VY = 0, 0
	}
}

func (s *session) enemySpeed() float64 {
	return s.difficulty.Speed(s.cfg.EnemySpeed, s.collected, s.elapsed)
}
