package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fchimpan/kusa-blocks/internal/game"
)

func TestRepeatGate(t *testing.T) {
	t.Parallel()

	g := repeatGate{interval: 85 * time.Millisecond}
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, g.allow(t0), "first press fires")
	assert.False(t, g.allow(t0.Add(30*time.Millisecond)))
	assert.False(t, g.allow(t0.Add(84*time.Millisecond)))
	assert.True(t, g.allow(t0.Add(85*time.Millisecond)))

	g.reset()
	assert.True(t, g.allow(t0.Add(90*time.Millisecond)))
}

func TestInputGates_Queue(t *testing.T) {
	t.Parallel()

	g := newInputGates()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var in game.Intents
	in = g.queue(in, game.MoveLeft, t0)
	assert.True(t, in.Has(game.MoveLeft))

	in = g.queue(in, game.MoveRight, t0.Add(100*time.Millisecond))
	assert.True(t, in.Has(game.MoveRight))
	assert.False(t, in.Has(game.MoveLeft), "latest direction wins")

	in = g.queue(in, game.SoftDrop, t0)
	in = g.queue(in.Without(game.SoftDrop), game.SoftDrop, t0.Add(10*time.Millisecond))
	assert.False(t, in.Has(game.SoftDrop), "soft drop throttled")

	in = g.queue(in, game.RotateLeft, t0)
	in = g.queue(in, game.RotateRight, t0)
	assert.True(t, in.Has(game.RotateLeft))
	assert.True(t, in.Has(game.RotateRight))
}

func TestIntentForKey(t *testing.T) {
	t.Parallel()

	tests := map[string]game.Intent{
		"left": game.MoveLeft,
		"d":    game.MoveRight,
		"down": game.SoftDrop,
		"z":    game.RotateLeft,
		"up":   game.RotateRight,
		"x":    game.RotateRight,
	}
	for key, want := range tests {
		got, ok := intentForKey(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := intentForKey("q")
	assert.False(t, ok)
}
