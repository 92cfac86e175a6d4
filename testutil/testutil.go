package testutil

import (
	"math/rand"

	"github.com/hupe1980/bitarray"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Bool returns a pseudo-random bit.
func (r *RNG) Bool() bool {
	return r.rand.Int63()&1 == 1
}

// Uint64 returns a pseudo-random 64-bit word.
func (r *RNG) Uint64() uint64 {
	return r.rand.Uint64()
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// FillRandom overwrites every bit of b with pseudo-random values.
func (r *RNG) FillRandom(b *bitarray.BitArray) {
	buf := b.Bytes()
	_, _ = r.rand.Read(buf)

	// Bits past Len() in the final byte must stay clear.
	if off := b.Len() % 8; off != 0 {
		buf[len(buf)-1] &= 1<<off - 1
	}
}
