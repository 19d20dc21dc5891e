package input

import (
	"time"

	"github.com/lixenwraith/minotaur/entity"
	"github.com/lixenwraith/minotaur/parameter"
)

// Held approximates key-held state from a terminal that only reports
// presses and auto-repeats. A direction counts as held for HoldWindow after
// its latest press. A press not yet consumed by a move stays pending, so a
// tap shorter than the move cooldown still moves once.
type Held struct {
	dir     entity.Direction
	at      time.Time
	Pending bool
	window  time.Duration
}

// NewHeld creates a tracker with the default hold window
func NewHeld() *Held {
	return &Held{window: parameter.HoldWindow}
}

// Press records a movement key press; the latest direction wins
func (h *Held) Press(d entity.Direction, now time.Time) {
	h.dir = d
	h.at = now
	h.Pending = true
}

// Current returns the held direction at now, zero when none
func (h *Held) Current(now time.Time) entity.Direction {
	if h.Pending || now.Sub(h.at) <= h.window {
		return h.dir
	}
	return entity.Direction{}
}

// Consume clears the pending press once a move step used it
func (h *Held) Consume() {
	h.Pending = false
}

// Reset forgets all held state
func (h *Held) Reset() {
	*h = Held{window: h.window}
}

// Direction maps a movement action to its unit vector
func Direction(a Action) (entity.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return entity.Up, true
	case ActionMoveDown:
		return entity.Down, true
	case ActionMoveLeft:
		return entity.Left, true
	case ActionMoveRight:
		return entity.Right, true
	}
	return entity.Direction{}, false
}
