package game

import "math/rand/v2"

// PieceSource hands out the kinds to spawn.
type PieceSource interface {
	Next() Kind
}

// Randomizer is a 7-bag: every kind is dispensed exactly once per cycle of
// seven draws, in uniformly random order.
type Randomizer struct {
	rng  *rand.Rand
	used [NumKinds]bool
	n    int
}

func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next draws uniformly among all kinds and redraws until it finds one that
// is unused in the current cycle. The bag is cleared as soon as the last kind
// is dispensed, so the loop always has a free kind to find.
func (r *Randomizer) Next() Kind {
	for {
		i := r.rng.IntN(NumKinds)
		if r.used[i] {
			continue
		}
		r.used[i] = true
		r.n++
		if r.n == NumKinds {
			r.used = [NumKinds]bool{}
			r.n = 0
		}
		return Kind(i)
	}
}

// Remaining returns how many kinds are still undrawn in the current cycle.
func (r *Randomizer) Remaining() int {
	return NumKinds - r.n
}
