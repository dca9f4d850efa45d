package engine

import (
	"slices"
	"sync"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// GamepadSource polls gamepad state on demand.
type GamepadSource interface {
	Gamepad(index int) (core.Gamepad, bool)
}

// GamepadSourceFunc adapts a function to GamepadSource.
type GamepadSourceFunc func(index int) (core.Gamepad, bool)

// Gamepad implements GamepadSource.
func (f GamepadSourceFunc) Gamepad(index int) (core.Gamepad, bool) {
	return f(index)
}

// Devices fans device events from the host out to every subscribed Input
// component. Hosts may call it from any goroutine; it only touches input
// state, never the entity collection.
type Devices struct {
	mu        sync.Mutex
	listeners []*Input
	source    GamepadSource
}

// NewDevices creates an empty device hub.
func NewDevices() *Devices {
	return &Devices{}
}

// SetGamepadSource installs the host's gamepad poller.
func (d *Devices) SetGamepadSource(src GamepadSource) {
	d.mu.Lock()
	d.source = src
	d.mu.Unlock()
}

// Poll reads a gamepad through the installed source.
func (d *Devices) Poll(index int) (core.Gamepad, bool) {
	d.mu.Lock()
	src := d.source
	d.mu.Unlock()
	if src == nil {
		return core.Gamepad{}, false
	}
	return src.Gamepad(index)
}

// KeyDown delivers a key press.
func (d *Devices) KeyDown(code core.KeyCode) {
	for _, in := range d.snapshot() {
		in.KeyDown(code)
	}
}

// KeyUp delivers a key release.
func (d *Devices) KeyUp(code core.KeyCode) {
	for _, in := range d.snapshot() {
		in.KeyUp(code)
	}
}

// GamepadConnected delivers a gamepad connect event.
func (d *Devices) GamepadConnected(index int) {
	for _, in := range d.snapshot() {
		in.GamepadConnected(index)
	}
}

// GamepadDisconnected delivers a gamepad disconnect event.
func (d *Devices) GamepadDisconnected(index int) {
	for _, in := range d.snapshot() {
		in.GamepadDisconnected(index)
	}
}

// Listeners returns the number of subscribed inputs.
func (d *Devices) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Devices) subscribe(in *Input) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !slices.Contains(d.listeners, in) {
		d.listeners = append(d.listeners, in)
	}
}

func (d *Devices) unsubscribe(in *Input) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i := slices.Index(d.listeners, in); i >= 0 {
		d.listeners = slices.Delete(d.listeners, i, i+1)
	}
}

// snapshot copies the listeners so callbacks run without holding the lock.
func (d *Devices) snapshot() []*Input {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.listeners)
}
