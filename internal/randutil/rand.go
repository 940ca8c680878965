// Package randutil centralises how deterministic rand/v2 generators are
// seeded, so every call site gets reproducible sequences from a single int64.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The two 64-bit PCG seeds are derived by bit mixing so nearby input seeds
// still produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns a generator for a numbered worker stream of a master seed.
// Streams with different numbers are statistically independent, which keeps
// parallel workers from replaying correlated shuffles.
func Derive(seed int64, stream int) *rand.Rand {
	return New(int64(uint64(seed) + (uint64(stream)+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
