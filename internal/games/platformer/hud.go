package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/games/kit"
)

// Timer counts the level clock down and restarts the level when it runs
// out. It stops once the level is won.
type Timer struct {
	engine.Base
	s *session
}

func (t *Timer) Kind() engine.Kind { return engine.KindBehavior }

func (t *Timer) Update(dt float64) {
	if !t.Active() || t.s.won {
		return
	}
	t.s.elapsed += dt
	t.s.remaining -= dt
	if t.s.remaining <= 0 {
		t.s.remaining = 0
		t.s.eng.Logger().Info("time up, restarting level", "coins", t.s.collected)
		t.Owner().Post(engine.IntentReset)
	}
}

// HUD keeps the status line and the win banner current.
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
	h.status.SetText(h.s.statusLine())
	if h.s.won {
		h.banner.SetText("You win!")
	}
	// Keep the banner centered across resizes.
	if b := h.banner.Owner(); b != nil {
		w, _ := h.s.eng.Surface().Size()
		b.X = float64(w) / 2
	}
}

// statusLine formats the HUD text, e.g. "Time: 60s Coins: 0/3".
func (s *session) statusLine() string {
	return fmt.Sprintf("Time: %ds Coins: %d/%d", int(math.Ceil(s.remaining)), s.collected, s.total)
}

func (s *session) addHUD() error {
	status := &kit.Text{Text: s.statusLine(), Color: core.ColorBrightWhite}
	banner := &kit.Text{Color: core.ColorBrightYellow, Align: core.AlignCenter}

	hud := engine.NewEntity("hud", 1, 0).MustAddComponent(status, &HUD{s: s, status: status, banner: banner})
	hud.Fixed = true
	if err := s.eng.AddGameObject(hud); err != nil {
		return err
	}

	w, _ := s.eng.Surface().Size()
	if w <= 0 {
		w = s.runtime.ScreenW
	}
	b := engine.NewEntity("banner", float64(w)/2, 2).MustAddComponent(banner)
	b.Fixed = true
	return s.eng.AddGameObject(b)
}
