package platformer

import (
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
)

// Coin is collected when the player touches it.
type Coin struct {
	engine.Base
	s *session
}

func (c *Coin) Kind() engine.Kind { return engine.KindBehavior }

func (c *Coin) Update(dt float64) {
	if !c.Active() {
		return
	}
	owner := c.Owner()
	if owner.Removing() || c.s.player == nil || !kit.Overlaps(owner, c.s.player) {
		return
	}
	c.s.collect()
	if err := owner.Remove(); err != nil {
		c.s.eng.Logger().Warn("remove coin", "entity", owner.Name, "err", err)
	}
}

// Patrol walks its owner back and forth between MinX and MaxX and sends
// the player back to the start on contact.
type Patrol struct {
	engine.Base
	s          *session
	MinX, MaxX float64
	Dir        float64 // +1 right, -1 left
}

func (p *Patrol) Kind() engine.Kind { return engine.KindBehavior }

func (p *Patrol) Update(dt float64) {
	if !p.Active() {
		return
	}
	owner := p.Owner()
	owner.X += p.Dir * p.s.enemySpeed() * dt
	if owner.X >= p.MaxX {
		owner.X = p.MaxX
		p.Dir = -1
	} else if owner.X <= p.MinX {
		owner.X = p.MinX
		p.Dir = 1
	}

	if p.s.player != nil && kit.Overlaps(owner, p.s.player) {
		p.s.eng.Logger().Debug("player hit", "enemy", owner.Name)
		p.s.respawn()
	}
}
