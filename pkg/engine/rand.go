package engine

import (
	"math/rand"
	"time"
)

// NewRand returns a time seeded random source suitable for the random
// consuming functions in this package
// Callers needing deterministic draws should construct their own rand.Rand
// from a fixed seed, and concurrent workers should each hold an
// independently seeded instance rather than sharing one
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
