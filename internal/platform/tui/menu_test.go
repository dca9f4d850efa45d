package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/registry"
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m.items = []registry.LevelInfo{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	steps := []tea.KeyMsg{
		{Type: tea.KeyDown},
		{Type: tea.KeyDown}, // clamped at the last item
		{Type: tea.KeyUp},
		{Type: tea.KeyRunes, Runes: []rune{'j'}},
		{Type: tea.KeyEnter},
	}
	for _, msg := range steps {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	if m.Selected() == nil || m.Selected().ID != "b" {
		t.Errorf("Selected() = %v, expected b", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(MenuModel)

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false, expected true")
	}
	if cmd == nil {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Errorf("View() = %q, expected empty", m.View())
	}
}
