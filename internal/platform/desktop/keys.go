package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// keyCodes maps Ebiten keys to engine key codes.
var keyCodes = map[ebiten.Key]core.KeyCode{
	ebiten.KeySpace:      core.KeySpace,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyArrowUp:    core.KeyArrowUp,
	ebiten.KeyArrowDown:  core.KeyArrowDown,
	ebiten.KeyArrowLeft:  core.KeyArrowLeft,
	ebiten.KeyArrowRight: core.KeyArrowRight,
}

// keyCode returns the engine code for an Ebiten key. Letters map to
// "KeyA" .. "KeyZ".
func keyCode(k ebiten.Key) (core.KeyCode, bool) {
	if code, ok := keyCodes[k]; ok {
		return code, true
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return core.KeyCode("Key" + string(rune('A'+int(k-ebiten.KeyA)))), true
	}
	return core.KeyNone, false
}

// standardButtons is the number of buttons in the standard layout.
const standardButtons = int(ebiten.StandardGamepadButtonMax) + 1

// pollGamepad reads a standard-layout gamepad. Ebiten's standard button
// order matches core.GamepadButton.
func pollGamepad(index int) (core.Gamepad, bool) {
	id := ebiten.GamepadID(index)
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return core.Gamepad{}, false
	}
	pad := core.Gamepad{Index: index, Buttons: make([]bool, standardButtons)}
	for b := range standardButtons {
		pad.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(b))
	}
	return pad, true
}
