package util

import "math/rand/v2"

// New returns a PCG-backed generator. A zero seed is treated as 1.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s*0x9e3779b97f4a7c15))
}

// Stream derives the generator for job i of a batch seeded with seed.
// Jobs get disjoint streams no matter which worker picks them up.
func Stream(seed int64, i int) *rand.Rand {
	return New(seed + int64(i)*7919 + 1)
}
