// Package random builds the pseudo-random sources used to roll targets.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a deterministic generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromSeedOrCrypto returns New(seed) when seed is non-zero, otherwise a
// generator seeded from crypto/rand.
func FromSeedOrCrypto(seed uint64) (*rand.Rand, uint64, error) {
	if seed != 0 {
		return New(seed), seed, nil
	}
	s, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(s), s, nil
}
