package engine

import (
	"slices"
	"sync"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// Bindings maps keys to the engine-level intents Input raises.
type Bindings struct {
	Pause []core.KeyCode
	Reset []core.KeyCode
	Quit  []core.KeyCode
}

// DefaultBindings returns P to pause/resume, R to restart and Q to quit.
func DefaultBindings() Bindings {
	return Bindings{
		Pause: []core.KeyCode{core.KeyP},
		Reset: []core.KeyCode{core.KeyR},
		Quit:  []core.KeyCode{core.KeyQ},
	}
}

// Input records keyboard and gamepad state for gameplay components to read
// and turns pause/reset/quit keys into engine intents.
//
// Device events arrive through Devices (or direct calls in tests) and may
// come from another goroutine than the game loop.
type Input struct {
	Base

	devices  *Devices
	bindings Bindings

	mu         sync.Mutex
	keys       map[core.KeyCode]bool
	presses    map[core.KeyCode]int // Since the last Pressed call
	gamepad    int
	hasGamepad bool
}

// NewInput creates an input component subscribed to devices. devices may
// be nil, in which case events are delivered by calling the methods
// directly.
func NewInput(devices *Devices, bindings Bindings) *Input {
	in := &Input{
		devices:  devices,
		bindings: bindings,
		keys:     make(map[core.KeyCode]bool),
		presses:  make(map[core.KeyCode]int),
	}
	if devices != nil {
		devices.subscribe(in)
	}
	return in
}

// Kind implements Component.
func (in *Input) Kind() Kind {
	return KindInput
}

// KeyDown records a press and raises the bound intent, if any.
func (in *Input) KeyDown(code core.KeyCode) {
	in.mu.Lock()
	in.keys[code] = true
	in.presses[code]++
	in.mu.Unlock()

	in.handleKeyPress(code)
}

// KeyUp records a release.
func (in *Input) KeyUp(code core.KeyCode) {
	in.mu.Lock()
	in.keys[code] = false
	in.mu.Unlock()
}

// IsKeyDown reports whether the key is currently held.
func (in *Input) IsKeyDown(code core.KeyCode) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.keys[code]
}

// AnyKeyDown reports whether any of the keys is held.
func (in *Input) AnyKeyDown(codes ...core.KeyCode) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, c := range codes {
		if in.keys[c] {
			return true
		}
	}
	return false
}

// Pressed reports whether any of the keys was pressed since the last call
// that asked about it, and forgets those presses. A tap that went down and
// up between two frames still counts.
func (in *Input) Pressed(codes ...core.KeyCode) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	pressed := false
	for _, c := range codes {
		if in.presses[c] > 0 {
			pressed = true
			delete(in.presses, c)
		}
	}
	return pressed
}

// GamepadConnected remembers the gamepad index.
func (in *Input) GamepadConnected(index int) {
	in.mu.Lock()
	in.gamepad, in.hasGamepad = index, true
	in.mu.Unlock()
}

// GamepadDisconnected forgets the gamepad if it is the one in use.
func (in *Input) GamepadDisconnected(index int) {
	in.mu.Lock()
	if in.hasGamepad && in.gamepad == index {
		in.gamepad, in.hasGamepad = 0, false
	}
	in.mu.Unlock()
}

// Gamepad polls the connected gamepad. The state is read fresh on every
// call.
func (in *Input) Gamepad() (core.Gamepad, bool) {
	in.mu.Lock()
	index, ok := in.gamepad, in.hasGamepad
	in.mu.Unlock()
	if !ok || in.devices == nil {
		return core.Gamepad{}, false
	}
	return in.devices.Poll(index)
}

// IsGamepadButtonDown reports whether a button on the connected gamepad is
// held. False without a gamepad.
func (in *Input) IsGamepadButtonDown(b core.GamepadButton) bool {
	pad, ok := in.Gamepad()
	return ok && pad.Pressed(b)
}

// Destroy unsubscribes from device events.
func (in *Input) Destroy() {
	if in.devices != nil {
		in.devices.unsubscribe(in)
	}
}

// handleKeyPress turns bound keys into intents. Reset and quit only count
// while paused; the engine checks that when it drains the queue, so a pause
// key pressed earlier in the same frame is taken into account. Without an
// owner registered in an engine it does nothing.
func (in *Input) handleKeyPress(code core.KeyCode) {
	owner := in.Owner()
	if owner == nil {
		return
	}
	eng := owner.Engine()
	if eng == nil {
		return
	}

	switch {
	case slices.Contains(in.bindings.Pause, code):
		eng.Post(IntentTogglePause)
	case slices.Contains(in.bindings.Reset, code):
		eng.Post(IntentMenuReset)
	case slices.Contains(in.bindings.Quit, code):
		eng.Post(IntentMenuQuit)
	}
}
