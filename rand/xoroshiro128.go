package rand

import "math/bits"

// Xoroshiro128Plus implements the xoroshiro128+ generator: two state words,
// period 2^128-1. The narrowest and fastest of the xoshiro/xoroshiro family
// carried here; its low-order bits have the same linear weakness as
// xoshiro256+, so bounded draws and floats are always derived from the high
// bits.
type Xoroshiro128Plus struct {
	s [2]uint64
}

// NewXoroshiro128Plus returns a generator seeded with seed.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	g := &Xoroshiro128Plus{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed.
func (g *Xoroshiro128Plus) Seed(seed uint64) {
	seedState(seed, g.s[:])
}

// Uint64 advances the state one step and returns the next 64 raw bits.
func (g *Xoroshiro128Plus) Uint64() uint64 {
	s0 := g.s[0]
	s1 := g.s[1]
	result := s0 + s1

	s1 ^= s0
	g.s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	g.s[1] = bits.RotateLeft64(s1, 37)

	return result
}
