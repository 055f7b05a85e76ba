package rand

// XorShift128 implements Marsaglia's xor128 generator: four 32-bit lanes,
// period 2^128-1, one xorshift cascade per 32-bit draw.
//
// Deprecated: xor128 fails modern statistical test batteries (notably
// BigCrush's MatrixRank and LinearComp). It is retained only so that streams
// recorded against it remain reproducible; new code should use one of the
// xoshiro generators or WyRand.
type XorShift128 struct {
	x, y, z, w uint32
}

// NewXorShift128 returns a generator seeded with seed.
func NewXorShift128(seed uint64) *XorShift128 {
	g := &XorShift128{}
	g.Seed(seed)
	return g
}

// Seed reinitializes the generator state from seed.
func (g *XorShift128) Seed(seed uint64) {
	var s [2]uint64
	seedState(seed, s[:])
	g.x = uint32(s[0])
	g.y = uint32(s[0] >> 32)
	g.z = uint32(s[1])
	g.w = uint32(s[1] >> 32)
	// The truncation to 32-bit lanes could in principle produce the all-zero
	// fixed point, which xor128 never escapes.
	if g.x|g.y|g.z|g.w == 0 {
		g.w = 1
	}
}

// Uint64 composes two 32-bit steps, low word first.
func (g *XorShift128) Uint64() uint64 {
	lo := g.next32()
	hi := g.next32()
	return uint64(hi)<<32 | uint64(lo)
}

func (g *XorShift128) next32() uint32 {
	t := g.x ^ (g.x << 11)
	g.x = g.y
	g.y = g.z
	g.z = g.w
	g.w = g.w ^ (g.w >> 19) ^ t ^ (t >> 8)
	return g.w
}
