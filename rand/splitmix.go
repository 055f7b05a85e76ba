package rand

const (
	splitMixGamma = 0x9e3779b97f4a7c15
	splitMixMul1  = 0xbf58476d1ce4e5b9
	splitMixMul2  = 0x94d049bb133111eb
)

// SplitMix64 is the SplitMix64 mixer/generator. It walks a 64-bit counter in
// steps of an odd constant and scrambles each counter value through two
// xorshift-multiply rounds. Its period is 2^64 and it is equidistributed over
// that period, which is why it is used to expand a single seed word into the
// larger state arrays of the other generators: run long enough it visits every
// 64-bit value exactly once, so state words derived from it are never "stuck"
// at a degenerate value such as all zeroes.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a SplitMix64 seeded with seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Seed resets the internal counter to seed.
func (s *SplitMix64) Seed(seed uint64) {
	s.state = seed
}

// Uint64 advances the counter and returns the next mixed value.
func (s *SplitMix64) Uint64() uint64 {
	s.state += splitMixGamma
	return Mix64(s.state)
}

// Mix64 is the SplitMix64 finalizer: a stateless avalanche mix in which every
// output bit depends on every input bit.
func Mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * splitMixMul1
	z = (z ^ (z >> 27)) * splitMixMul2
	return z ^ (z >> 31)
}

// seedState expands seed into len(state) well-distributed words. All
// generator Seed implementations route through here so that reseeding with
// the same value is deterministic and the xoshiro/xoroshiro family never
// starts from the all-zero fixed point.
func seedState(seed uint64, state []uint64) {
	sm := SplitMix64{state: seed}
	for i := range state {
		state[i] = sm.Uint64()
	}
}
