package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Rand is the source of uniform draws in [0, n) used for bomb placement.
// [*rand.Rand] satisfies it.
type Rand interface {
	IntN(n int) int
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
