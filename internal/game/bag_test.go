package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizer_EveryCycleHoldsEachKindOnce(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{0, 1, 42, 123456789} {
		r := NewRandomizer(seed)
		for cycle := 0; cycle < 50; cycle++ {
			seen := map[Kind]int{}
			for i := 0; i < NumKinds; i++ {
				assert.Equal(t, NumKinds-i, r.Remaining())
				k := r.Next()
				require.True(t, k.Valid())
				seen[k]++
			}
			require.Len(t, seen, NumKinds, "seed %d cycle %d", seed, cycle)
			for k, n := range seen {
				assert.Equal(t, 1, n, "seed %d cycle %d kind %s", seed, cycle, k)
			}
		}
	}
}

func TestRandomizer_RemainingRefillsAfterLastDraw(t *testing.T) {
	t.Parallel()

	r := NewRandomizer(3)
	assert.Equal(t, NumKinds, r.Remaining())
	for i := 0; i < NumKinds-1; i++ {
		r.Next()
	}
	assert.Equal(t, 1, r.Remaining())

	r.Next()
	assert.Equal(t, NumKinds, r.Remaining(), "a finished cycle starts a full bag")
}

func TestRandomizer_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, b := NewRandomizer(7), NewRandomizer(7)
	for i := 0; i < 70; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomizer_OrderVariesAcrossCycles(t *testing.T) {
	t.Parallel()

	r := NewRandomizer(99)
	orders := map[[NumKinds]Kind]bool{}
	for cycle := 0; cycle < 20; cycle++ {
		var order [NumKinds]Kind
		for i := range order {
			order[i] = r.Next()
		}
		orders[order] = true
	}
	assert.Greater(t, len(orders), 1)
}
