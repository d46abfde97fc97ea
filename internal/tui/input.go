package tui

import (
	"time"

	"github.com/fchimpan/kusa-blocks/internal/game"
)

// Held keys arrive as terminal key repeats; these gates throttle them to the
// game's own repeat rates. A fresh press always fires immediately.
const (
	horizontalRepeat = 85 * time.Millisecond
	softDropRepeat   = 50 * time.Millisecond
)

type repeatGate struct {
	interval time.Duration
	last     time.Time
}

func (g *repeatGate) allow(now time.Time) bool {
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

func (g *repeatGate) reset() { g.last = time.Time{} }

type inputGates struct {
	horizontal repeatGate
	softDrop   repeatGate
}

func newInputGates() inputGates {
	return inputGates{
		horizontal: repeatGate{interval: horizontalRepeat},
		softDrop:   repeatGate{interval: softDropRepeat},
	}
}

func (g *inputGates) reset() {
	g.horizontal.reset()
	g.softDrop.reset()
}

func intentForKey(key string) (game.Intent, bool) {
	switch key {
	case "left", "h", "a", "H", "A":
		return game.MoveLeft, true
	case "right", "l", "d", "L", "D":
		return game.MoveRight, true
	case "down", "j", "s", "J", "S":
		return game.SoftDrop, true
	case "z", "Z", ",":
		return game.RotateLeft, true
	case "x", "X", "up", "k", "K", ".":
		return game.RotateRight, true
	}
	return 0, false
}

// queue records a key press for the next step. Horizontal intents replace
// each other so at most one direction reaches the session; rotations are
// edge-triggered and never throttled.
func (g *inputGates) queue(pending game.Intents, in game.Intent, now time.Time) game.Intents {
	switch in {
	case game.MoveLeft, game.MoveRight:
		if !g.horizontal.allow(now) {
			return pending
		}
		return pending.Without(game.MoveLeft).Without(game.MoveRight).With(in)
	case game.SoftDrop:
		if !g.softDrop.allow(now) {
			return pending
		}
		return pending.With(in)
	default:
		return pending.With(in)
	}
}
