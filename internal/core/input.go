package core

// KeyCode identifies a physical key, using DOM-style code names ("KeyP",
// "ArrowLeft", "Space") so bindings read the same on every host.
type KeyCode string

const (
	KeyNone       KeyCode = ""
	KeyA          KeyCode = "KeyA"
	KeyD          KeyCode = "KeyD"
	KeyP          KeyCode = "KeyP"
	KeyQ          KeyCode = "KeyQ"
	KeyR          KeyCode = "KeyR"
	KeyS          KeyCode = "KeyS"
	KeyW          KeyCode = "KeyW"
	KeySpace      KeyCode = "Space"
	KeyEnter      KeyCode = "Enter"
	KeyEscape     KeyCode = "Escape"
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyArrowDown  KeyCode = "ArrowDown"
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
)

// GamepadButton indexes a button in the standard gamepad layout.
type GamepadButton int

// Standard gamepad mapping indices.
const (
	GamepadA         GamepadButton = 0
	GamepadB         GamepadButton = 1
	GamepadX         GamepadButton = 2
	GamepadY         GamepadButton = 3
	GamepadSelect    GamepadButton = 8
	GamepadStart     GamepadButton = 9
	GamepadDPadUp    GamepadButton = 12
	GamepadDPadDown  GamepadButton = 13
	GamepadDPadLeft  GamepadButton = 14
	GamepadDPadRight GamepadButton = 15
)

// Gamepad is a polled snapshot of one gamepad.
type Gamepad struct {
	Index   int
	Buttons []bool
}

// Pressed reports whether the button is held. Out-of-range buttons are
// reported as not pressed.
func (g Gamepad) Pressed(b GamepadButton) bool {
	if b < 0 || int(b) >= len(g.Buttons) {
		return false
	}
	return g.Buttons[b]
}
