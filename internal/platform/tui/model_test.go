package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
)

// inputLevel builds a single entity listening to the default bindings.
type inputLevel struct{}

func (inputLevel) ID() string    { return "input" }
func (inputLevel) Title() string { return "Input" }

func (inputLevel) Build(e *engine.Engine) error {
	ent := engine.NewEntity("listener", 1, 1).MustAddComponent(engine.NewInput(e.Devices(), engine.DefaultBindings()))
	return e.AddGameObject(ent)
}

func newTestModel(t *testing.T, menu bool) Model {
	t.Helper()
	m := NewModel(inputLevel{}, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 40, ScreenH: 11, TickRate: 60},
		Config:        config.DefaultEngineConfig(),
		Logger:        log.New(io.Discard),
		ScreenshotDir: t.TempDir(),
		Menu:          menu,
	})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() returned no command")
	}
	return m
}

func press(m Model, r rune) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func tick(m Model, at time.Duration) (Model, tea.Cmd) {
	next, cmd := m.Update(TickMsg{ID: m.id, Time: m.origin.Add(at)})
	return next.(Model), cmd
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = tick(m, 16*time.Millisecond)

	m = press(m, 'p')
	m, cmd := tick(m, 32*time.Millisecond)

	if m.Engine().State() != engine.StatePaused {
		t.Fatalf("State() = %v, expected paused", m.Engine().State())
	}
	if cmd == nil {
		t.Error("tick returned no command, expected the next tick")
	}
	if !strings.Contains(m.View(), "Game Paused") {
		t.Errorf("View() = %q, expected the pause overlay", m.View())
	}

	// Auto-repeat of the held key must not toggle again.
	m = press(m, 'p')
	m, _ = tick(m, 48*time.Millisecond)
	if m.Engine().State() != engine.StatePaused {
		t.Errorf("State() = %v after a repeat, expected paused", m.Engine().State())
	}
}

func TestModelQuitWhilePaused(t *testing.T) {
	tests := []struct {
		name       string
		menu       bool
		quitting   bool
		backToMenu bool
	}{
		{"standalone", false, true, false},
		{"session", true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.menu)
			m = press(m, 'p')
			m, _ = tick(m, 16*time.Millisecond)
			m = press(m, 'q')
			m, cmd := tick(m, 32*time.Millisecond)

			if !m.Engine().Stopped() {
				t.Fatal("engine should be stopped")
			}
			if m.IsQuitting() != tt.quitting {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.quitting)
			}
			if m.BackToMenu() != tt.backToMenu {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.backToMenu)
			}
			if cmd == nil {
				t.Fatal("expected tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, expected tea.QuitMsg", cmd())
			}
		})
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m := newTestModel(t, false)
	next, cmd := m.Update(TickMsg{ID: m.id + 1, Time: m.origin.Add(time.Second)})
	m = next.(Model)

	if cmd != nil {
		t.Error("foreign tick returned a command, expected none")
	}
	if m.Engine().Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", m.Engine().Frames())
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = tick(m, 16*time.Millisecond)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)

	files, err := filepath.Glob(filepath.Join(m.opts.ScreenshotDir, "input_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != m.screen.String() {
		t.Errorf("screenshot = %q, expected %q", data, m.screen.String())
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = tick(m, 16*time.Millisecond)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 21})
	m = next.(Model)

	if w, h := m.screen.Size(); w != 60 || h != 20 {
		t.Errorf("screen = %dx%d, expected 60x20", w, h)
	}
	if m.Engine().Epoch() != 1 {
		t.Errorf("Epoch() = %d, expected 1", m.Engine().Epoch())
	}
	if _, ok := m.Engine().Find("listener"); !ok {
		t.Error("listener lost on resize")
	}
}

func TestSessionReturnsToMenu(t *testing.T) {
	opts := Options{
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 11, TickRate: 60},
		Config:  config.DefaultEngineConfig(),
		Logger:  log.New(io.Discard),
		Menu:    true,
	}
	s := NewSessionModel(uuid.New(), "tester", opts)
	game := NewModel(inputLevel{}, opts)
	game.Init()
	s.game = &game

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	s = next.(SessionModel)

	if s.game != nil {
		t.Fatal("session still in game after ctrl+b")
	}
	if s.quitting {
		t.Error("session quit, expected the menu")
	}
	if !game.Engine().Stopped() {
		t.Error("engine should be stopped when leaving the game")
	}
}
