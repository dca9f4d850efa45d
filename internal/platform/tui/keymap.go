package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until no repeat arrived for a while. The first hold is
// long enough to bridge the auto-repeat delay. A press of a held key that
// comes later than tapGap after the previous one is a new tap, not a
// repeat.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 120 * time.Millisecond
	tapGap     = 80 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to engine key codes.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the key code for a key message, or false for keys the
// engine has no code for.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.KeyCode, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return core.KeyArrowUp, true
	case tea.KeyDown:
		return core.KeyArrowDown, true
	case tea.KeyLeft:
		return core.KeyArrowLeft, true
	case tea.KeyRight:
		return core.KeyArrowRight, true
	case tea.KeySpace:
		return core.KeySpace, true
	case tea.KeyEnter:
		return core.KeyEnter, true
	case tea.KeyEsc:
		return core.KeyEscape, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.KeyNone, false
		}
		return runeKey(msg.Runes[0])
	}
	return core.KeyNone, false
}

// runeKey maps a letter to its DOM-style code ("KeyA" .. "KeyZ"),
// ignoring case. A space typed as a rune maps to Space.
func runeKey(r rune) (core.KeyCode, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return core.KeyCode("Key" + string(r-'a'+'A')), true
	case r >= 'A' && r <= 'Z':
		return core.KeyCode("Key" + string(r)), true
	case r == ' ':
		return core.KeySpace, true
	}
	return core.KeyNone, false
}

// heldKeys synthesizes key releases from the stream of presses.
type heldKeys struct {
	until map[core.KeyCode]time.Time
	last  map[core.KeyCode]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{
		until: make(map[core.KeyCode]time.Time),
		last:  make(map[core.KeyCode]time.Time),
	}
}

// Press records a press at now and reports whether it is a new press:
// the key was up, or it is held but the previous event is older than
// tapGap.
func (h *heldKeys) Press(code core.KeyCode, now time.Time) bool {
	deadline, held := h.until[code]
	prev := h.last[code]
	h.last[code] = now
	if !held {
		h.until[code] = now.Add(firstHold)
		return true
	}
	if next := now.Add(repeatHold); next.After(deadline) {
		h.until[code] = next
	}
	return now.Sub(prev) >= tapGap
}

// Expire returns the keys whose hold ran out by now and forgets them.
func (h *heldKeys) Expire(now time.Time) []core.KeyCode {
	var released []core.KeyCode
	for code, deadline := range h.until {
		if !now.Before(deadline) {
			released = append(released, code)
			delete(h.until, code)
			delete(h.last, code)
		}
	}
	return released
}

// Release forgets every held key and returns them.
func (h *heldKeys) Release() []core.KeyCode {
	released := make([]core.KeyCode, 0, len(h.until))
	for code := range h.until {
		released = append(released, code)
	}
	clear(h.until)
	clear(h.last)
	return released
}

// HostKeyMap defines the keys the terminal host handles itself.
type HostKeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Back       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HostKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Screenshot, k.Back, k.Quit}}
}

// DefaultHostKeyMap returns default host key bindings.
func DefaultHostKeyMap() HostKeyMap {
	return HostKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "back to menu"),
			key.WithDisabled(),
		),
	}
}
