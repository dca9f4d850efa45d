package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
)

// Gap is the passable opening of a pipe, in rows.
type Gap struct {
	Y      int // Top of the gap
	Height int
}

// TopRect returns the pipe section above the gap.
func (g Gap) TopRect(x, width float64) core.Rect {
	return core.NewRect(x, 0, width, float64(g.Y))
}

// BottomRect returns the pipe section between the gap and the ground.
func (g Gap) BottomRect(x, width float64, groundY int) core.Rect {
	bottomY := g.Y + g.Height
	return core.NewRect(x, float64(bottomY), width, float64(groundY-bottomY))
}

// PipeManager draws pipe gaps from a seeded RNG.
type PipeManager struct {
	rng     *rand.Rand
	cfg     config.FlappyConfig
	groundY int
	spawned int
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig, groundY int) *PipeManager {
	return &PipeManager{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		groundY: groundY,
	}
}

// Spawned returns how many gaps have been drawn.
func (pm *PipeManager) Spawned() int {
	return pm.spawned
}

// Next returns the gap for the next pipe: a height between MinGap and
// MaxGap, placed at least Margin rows from the top and from the ground.
func (pm *PipeManager) Next() Gap {
	pm.spawned++

	height := pm.cfg.MinGap
	if span := pm.cfg.MaxGap - pm.cfg.MinGap; span > 0 {
		height += pm.rng.Intn(span + 1)
	}

	minY := pm.cfg.Margin
	maxY := pm.groundY - pm.cfg.Margin - height
	if maxY < minY {
		maxY = minY // Edge case for very small screens
	}
	y := minY
	if maxY > minY {
		y += pm.rng.Intn(maxY - minY + 1)
	}
	return Gap{Y: y, Height: height}
}

// Spawner keeps the scroll speed current, feeds in new pipes, and restarts
// the level once a crash has been on screen long enough.
type Spawner struct {
	engine.Base
	s         *session
	untilNext float64 // Cells left to scroll before the next pipe
}

func (sp *Spawner) Kind() engine.Kind { return engine.KindBehavior }

func (sp *Spawner) Update(dt float64) {
	if !sp.Active() {
		return
	}
	s := sp.s
	if s.over {
		s.resetIn -= dt
		if s.resetIn <= 0 {
			s.eng.Logger().Info("restarting level", "score", s.score)
			sp.Owner().Post(engine.IntentReset)
		}
		return
	}

	s.elapsed += dt
	s.scroll = s.speed()
	sp.untilNext -= s.scroll * dt
	if sp.untilNext > 0 {
		return
	}
	if err := s.spawnPipe(s.worldW + sp.untilNext); err != nil {
		s.eng.Logger().Warn("spawn pipe", "err", err)
	}
	sp.untilNext += s.cfg.PipeSpacing
}

// Pipe scrolls one pipe section to the left and removes it once it has
// left the screen. The scoring section counts the pipe when it clears the
// bird.
type Pipe struct {
	engine.Base
	s      *session
	W      float64
	Scores bool
	passed bool
}

func (p *Pipe) Kind() engine.Kind { return engine.KindBehavior }

func (p *Pipe) Update(dt float64) {
	if !p.Active() || p.s.over {
		return
	}
	owner := p.Owner()
	owner.X -= p.s.scroll * dt

	if p.Scores && !p.passed && owner.X+p.W < birdX {
		p.passed = true
		p.s.scored()
	}
	if owner.X+p.W < 0 && !owner.Removing() {
		if err := owner.Remove(); err != nil {
			p.s.eng.Logger().Warn("remove pipe", "entity", owner.Name, "err", err)
		}
	}
}

// Section draws a pipe body with a cap row facing the gap.
type Section struct {
	engine.Base
	W, H   float64
	CapRow float64
	Cap    rune
}

func (sc *Section) Kind() engine.Kind { return engine.KindShape }

func (sc *Section) Draw(dst engine.Surface) {
	owner := sc.Owner()
	if owner == nil || sc.H <= 0 {
		return
	}
	dst.FillRect(owner.X, owner.Y, sc.W, sc.H, core.Fill{Rune: PipeChar, Color: core.ColorGreen})
	dst.FillRect(owner.X, owner.Y+sc.CapRow, sc.W, 1, core.Fill{Rune: sc.Cap, Color: core.ColorBrightGreen})
}

// spawnPipe adds the two sections of a new pipe with its left edge at x.
// Empty sections are skipped.
func (s *session) spawnPipe(x float64) error {
	gap := s.pipes.Next()
	name := fmt.Sprintf("pipe-%d", s.pipes.Spawned())
	width := s.cfg.PipeWidth

	top := gap.TopRect(x, width)
	bottom := gap.BottomRect(x, width, int(s.groundY))
	sections := []struct {
		suffix string
		r      core.Rect
		capRow float64
		cap    rune
	}{
		{"top", top, top.H - 1, PipeCapTop},
		{"bottom", bottom, 0, PipeCapBottom},
	}

	scores := true
	for _, sec := range sections {
		if sec.r.H <= 0 {
			continue
		}
		ent := engine.NewEntity(name+"-"+sec.suffix, sec.r.X, sec.r.Y).MustAddComponent(
			&kit.Collider{W: sec.r.W, H: sec.r.H},
			&Pipe{s: s, W: width, Scores: scores},
			&Section{W: sec.r.W, H: sec.r.H, CapRow: sec.capRow, Cap: sec.cap},
		)
		if err := s.eng.AddGameObject(ent); err != nil {
			return err
		}
		scores = false
	}
	return nil
}

// hitsPipe reports whether bird overlaps any pipe section.
func (s *session) hitsPipe(bird *engine.Entity) bool {
	for _, e := range s.eng.GameObjects() {
		if e.Removing() {
			continue
		}
		if _, ok := engine.ComponentOf[*Pipe](e, engine.KindBehavior); ok && kit.Overlaps(bird, e) {
			return true
		}
	}
	return false
}
