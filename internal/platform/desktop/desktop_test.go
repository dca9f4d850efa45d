package desktop

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-engine/internal/core"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.KeyCode
		ok       bool
	}{
		{ebiten.KeyA, core.KeyA, true},
		{ebiten.KeyP, core.KeyP, true},
		{ebiten.KeyZ, core.KeyCode("KeyZ"), true},
		{ebiten.KeySpace, core.KeySpace, true},
		{ebiten.KeyArrowLeft, core.KeyArrowLeft, true},
		{ebiten.KeyEscape, core.KeyEscape, true},
		{ebiten.KeyDigit1, core.KeyNone, false},
		{ebiten.KeyF1, core.KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := keyCode(tt.key)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("keyCode(%v) = (%q, %v), expected (%q, %v)", tt.key, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestStandardButtonOrder(t *testing.T) {
	tests := []struct {
		button   core.GamepadButton
		expected ebiten.StandardGamepadButton
	}{
		{core.GamepadA, ebiten.StandardGamepadButtonRightBottom},
		{core.GamepadY, ebiten.StandardGamepadButtonRightTop},
		{core.GamepadStart, ebiten.StandardGamepadButtonCenterRight},
		{core.GamepadDPadLeft, ebiten.StandardGamepadButtonLeftLeft},
		{core.GamepadDPadRight, ebiten.StandardGamepadButtonLeftRight},
	}

	for _, tt := range tests {
		if int(tt.button) != int(tt.expected) {
			t.Errorf("button %d maps to standard button %d", tt.button, tt.expected)
		}
	}
}

func TestPixelRect(t *testing.T) {
	px, py, pw, ph := pixelRect(2.7, -0.5, 3, 1)
	if px != 2*CellW || py != -CellH || pw != 3*CellW || ph != CellH {
		t.Errorf("pixelRect() = (%v, %v, %v, %v)", px, py, pw, ph)
	}
}

func TestCellColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Color
		dim      bool
		expected color.RGBA
	}{
		{"default", core.ColorDefault, false, color.RGBA{0xc0, 0xc0, 0xc0, 0xff}},
		{"default dim", core.ColorDefault, true, color.RGBA{0x60, 0x60, 0x60, 0xff}},
		{"black", core.ColorBlack, false, color.RGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellColor(tt.color, tt.dim); got != tt.expected {
				t.Errorf("cellColor() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDisconnectedPads(t *testing.T) {
	known := map[ebiten.GamepadID]struct{}{0: {}, 2: {}, 5: {}}
	gone := func(id ebiten.GamepadID) bool { return id != 2 }

	got := disconnected(known, gone)
	if len(got) != 2 || got[0] != 0 || got[1] != 5 {
		t.Errorf("disconnected() = %v, expected [0 5]", got)
	}
	if _, ok := known[2]; !ok || len(known) != 1 {
		t.Errorf("known = %v, expected only pad 2 left", known)
	}
	if got := disconnected(known, func(ebiten.GamepadID) bool { return false }); len(got) != 0 {
		t.Errorf("disconnected() = %v, expected none", got)
	}
}
