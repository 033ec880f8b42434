package session

import (
	"math/rand/v2"
	"time"
)

// Shuffler produces a uniformly random permutation through swap calls.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a PCG-backed shuffler. The same seed always yields
// the same permutations.
func NewShuffler(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newTimeShuffler seeds a shuffler from the wall clock.
func newTimeShuffler() *rand.Rand {
	return NewShuffler(uint64(time.Now().UnixNano()))
}
