package engine

import "sync"

// Intent is a high-level request from gameplay code or input to the engine's
// state machine. Intents are queued and applied at the start of the next
// frame, never in the middle of an update or draw pass.
type Intent int

const (
	IntentNone Intent = iota
	IntentPause
	IntentResume
	IntentTogglePause
	IntentReset
	IntentQuit
	// IntentMenuReset and IntentMenuQuit come from the pause menu. They
	// only apply if the engine is paused when the queue drains.
	IntentMenuReset
	IntentMenuQuit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentPause:
		return "Pause"
	case IntentResume:
		return "Resume"
	case IntentTogglePause:
		return "TogglePause"
	case IntentReset:
		return "Reset"
	case IntentQuit:
		return "Quit"
	case IntentMenuReset:
		return "MenuReset"
	case IntentMenuQuit:
		return "MenuQuit"
	default:
		return "Unknown"
	}
}

// intentQueue is safe for use from device-event goroutines.
type intentQueue struct {
	mu    sync.Mutex
	items []Intent
}

func (q *intentQueue) push(in Intent) {
	q.mu.Lock()
	q.items = append(q.items, in)
	q.mu.Unlock()
}

func (q *intentQueue) drain() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *intentQueue) clear() {
	q.mu.Lock()
	q.items = nil
	q.mu.Unlock()
}
