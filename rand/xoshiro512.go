package rand

import "math/bits"

// Xoshiro512StarStar implements the xoshiro512** generator: the wide variant
// of xoshiro256** with eight state words and period 2^512-1, for workloads
// that want a longer period or many well-separated parallel streams.
type Xoshiro512StarStar struct {
	s [8]uint64
}

// NewXoshiro512StarStar returns a generator seeded with seed.
func NewXoshiro512StarStar(seed uint64) *Xoshiro512StarStar {
	g := &Xoshiro512StarStar{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed.
func (g *Xoshiro512StarStar) Seed(seed uint64) {
	seedState(seed, g.s[:])
}

// Uint64 advances the state one step and returns the next 64 raw bits.
func (g *Xoshiro512StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(g.s[1]*5, 7) * 9

	t := g.s[1] << 11

	g.s[2] ^= g.s[0]
	g.s[5] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[7] ^= g.s[3]
	g.s[3] ^= g.s[4]
	g.s[4] ^= g.s[5]
	g.s[0] ^= g.s[6]
	g.s[6] ^= g.s[7]

	g.s[6] ^= t

	g.s[7] = bits.RotateLeft64(g.s[7], 21)

	return result
}
