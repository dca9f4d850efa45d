package engine

import (
	"context"
	"sync"
	"time"
)

// FrameFunc runs one frame. now is the time since the scheduler's origin.
type FrameFunc func(now time.Duration)

// Scheduler runs a callback once on the next refresh tick.
// Engine.Frame asks for the following frame while the engine is running.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// HostScheduler is for hosts that own their refresh loop (Bubble Tea ticks,
// Ebiten updates, tests). It holds at most one pending request; the host
// calls Fire on every tick.
type HostScheduler struct {
	mu      sync.Mutex
	pending FrameFunc
}

// RequestFrame implements Scheduler.
func (h *HostScheduler) RequestFrame(fn FrameFunc) {
	h.mu.Lock()
	h.pending = fn
	h.mu.Unlock()
}

// Pending reports whether a frame has been requested.
func (h *HostScheduler) Pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending != nil
}

// Fire runs the pending frame, if any, and reports whether one ran.
func (h *HostScheduler) Fire(now time.Duration) bool {
	h.mu.Lock()
	fn := h.pending
	h.pending = nil
	h.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(now)
	return true
}

// TickerScheduler drives frames from a time.Ticker, for headless runs.
type TickerScheduler struct {
	HostScheduler
	interval time.Duration
}

// NewTickerScheduler creates a scheduler that ticks at the given interval.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{interval: interval}
}

// Run fires requested frames on every tick until no frame is pending (the
// engine stopped) or ctx is cancelled.
func (t *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	origin := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !t.Fire(now.Sub(origin)) {
				return nil
			}
		}
	}
}
