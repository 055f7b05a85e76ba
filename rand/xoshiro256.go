package rand

import "math/bits"

// The xoshiro256 generators of Blackman and Vigna share one state-transition
// function over four 64-bit words and differ only in how the result is
// extracted from the state before the transition. All three have period
// 2^256-1. The ** and ++ scramblers pass the full BigCrush battery; the +
// extractor is slightly faster but its low-order bits have detectable linear
// structure, so consumers of + output should prefer the high bits (the
// derived-value layer in this package always does).

// Xoshiro256StarStar implements the xoshiro256** generator.
type Xoshiro256StarStar struct {
	s [4]uint64
}

// NewXoshiro256StarStar returns a generator seeded with seed.
func NewXoshiro256StarStar(seed uint64) *Xoshiro256StarStar {
	g := &Xoshiro256StarStar{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed. Reseeding with the same
// value restarts the identical output stream.
func (g *Xoshiro256StarStar) Seed(seed uint64) {
	seedState(seed, g.s[:])
}

// Uint64 advances the state one step and returns the next 64 raw bits.
func (g *Xoshiro256StarStar) Uint64() uint64 {
	result := bits.RotateLeft64(g.s[1]*5, 7) * 9
	g.step()
	return result
}

func (g *Xoshiro256StarStar) step() {
	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]

	g.s[2] ^= t

	g.s[3] = bits.RotateLeft64(g.s[3], 45)
}

// Xoshiro256PlusPlus implements the xoshiro256++ generator.
type Xoshiro256PlusPlus struct {
	s [4]uint64
}

// NewXoshiro256PlusPlus returns a generator seeded with seed.
func NewXoshiro256PlusPlus(seed uint64) *Xoshiro256PlusPlus {
	g := &Xoshiro256PlusPlus{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed.
func (g *Xoshiro256PlusPlus) Seed(seed uint64) {
	seedState(seed, g.s[:])
}

// Uint64 advances the state one step and returns the next 64 raw bits.
func (g *Xoshiro256PlusPlus) Uint64() uint64 {
	result := bits.RotateLeft64(g.s[0]+g.s[3], 23) + g.s[0]

	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]

	g.s[2] ^= t

	g.s[3] = bits.RotateLeft64(g.s[3], 45)

	return result
}

// Xoshiro256Plus implements the xoshiro256+ generator. Fastest of the three
// extractors; weak low-order bits.
type Xoshiro256Plus struct {
	s [4]uint64
}

// NewXoshiro256Plus returns a generator seeded with seed.
func NewXoshiro256Plus(seed uint64) *Xoshiro256Plus {
	g := &Xoshiro256Plus{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed.
func (g *Xoshiro256Plus) Seed(seed uint64) {
	seedState(seed, g.s[:])
}

// Uint64 advances the state one step and returns the next 64 raw bits.
func (g *Xoshiro256Plus) Uint64() uint64 {
	result := g.s[0] + g.s[3]

	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]

	g.s[2] ^= t

	g.s[3] = bits.RotateLeft64(g.s[3], 45)

	return result
}
