package tui

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last
// press or auto-repeat event. Terminals report presses, not releases.
const HoldWindow = 250 * time.Millisecond

// HeldKeys turns key press events into per-tick key state.
type HeldKeys struct {
	window time.Duration
	held   map[KeyBinding]time.Time // binding -> released at
	once   []KeyBinding
}

// NewHeldKeys creates an empty table.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{
		window: window,
		held:   make(map[KeyBinding]time.Time),
	}
}

// Press records a key event at now. A direction replaces the other
// directions held by the same player so turns take effect at once.
func (h *HeldKeys) Press(b KeyBinding, now time.Time) {
	if !b.Held {
		h.once = append(h.once, b)
		return
	}
	for other := range h.held {
		if other.Player == b.Player && other != b {
			delete(h.held, other)
		}
	}
	h.held[b] = now.Add(h.window)
}

// Frame returns the key state for a tick at now. One-shot bindings are
// consumed; held bindings past their window are released.
func (h *HeldKeys) Frame(now time.Time) core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for b, until := range h.held {
		if !now.Before(until) {
			delete(h.held, b)
			continue
		}
		frame.Press(b.Player, b.Action)
	}
	for _, b := range h.once {
		frame.Press(b.Player, b.Action)
	}
	h.once = h.once[:0]
	return frame
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.held)
	h.once = h.once[:0]
}
