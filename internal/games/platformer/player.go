package platformer

import (
	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
)

// Controller turns input into player movement.
type Controller struct {
	engine.Base
	s     *session
	input *engine.Input
	body  *kit.Body
}

func (c *Controller) Kind() engine.Kind { return engine.KindBehavior }

func (c *Controller) Update(dt float64) {
	if !c.Active() {
		return
	}
	in := c.input
	keys := c.s.keys

	left := in.AnyKeyDown(config.KeyCodes(keys.Left)...) || in.IsGamepadButtonDown(core.GamepadDPadLeft)
	right := in.AnyKeyDown(config.KeyCodes(keys.Right)...) || in.IsGamepadButtonDown(core.GamepadDPadRight)
	jump := in.AnyKeyDown(config.KeyCodes(keys.Jump)...) || in.IsGamepadButtonDown(core.GamepadA)

	c.body.VX = 0
	if left && !right {
		c.body.VX = -c.s.cfg.MoveSpeed
	} else if right && !left {
		c.body.VX = c.s.cfg.MoveSpeed
	}

	if jump && c.body.OnGround {
		c.body.VY = c.s.cfg.JumpImpulse
		c.body.OnGround = false
		c.s.play("jump")
	}

	if c.Owner().Y > c.s.worldH {
		c.s.respawn()
	}
}

func (s *session) spawnPlayer(groundY float64) (*engine.Entity, error) {
	s.spawnX, s.spawnY = 5, groundY-playerH

	input := engine.NewInput(s.eng.Devices(), s.bindings())
	body := &kit.Body{Gravity: s.cfg.Gravity, MaxFallSpeed: maxFallSpeed}
	img, _ := s.res.Image("player")

	player := engine.NewEntity("player", s.spawnX, s.spawnY).MustAddComponent(
		input,
		&Controller{s: s, input: input, body: body},
		body,
		&kit.Collider{W: playerW, H: playerH},
		&kit.Sprite{Image: img, W: playerW, H: playerH, Fallback: core.Fill{Rune: '@', Color: core.ColorBrightCyan}},
	)
	if err := s.eng.AddGameObject(player); err != nil {
		return nil, err
	}
	s.player = player
	return player, nil
}
