package rand

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// Derived-value operations over the raw Uint64 stream. Two rules hold
// throughout: bounded draws use rejection sampling rather than modulo, which
// would bias small residues, and every derivation consumes the most
// significant bits of a draw, because the additive generator variants have
// weaker low-order bits.

// Uint32 returns the top 32 bits of the next draw.
func (r *Rand) Uint32() uint32 {
	return uint32(r.src.Uint64() >> 32)
}

// Next returns an int32 in [0, math.MaxInt32), rejection-sampling out the
// single value math.MaxInt32. This matches the convention of RNG APIs whose
// upper bound is exclusive; Int31 is the faster inclusive form.
func (r *Rand) Next() int32 {
	for {
		v := int32(r.src.Uint64() >> 33)
		if v != math.MaxInt32 {
			return v
		}
	}
}

// Int31 returns an int32 in [0, math.MaxInt32]. Unlike Next it admits
// math.MaxInt32 and therefore needs no rejection loop.
func (r *Rand) Int31() int32 {
	return int32(r.src.Uint64() >> 33)
}

// Int31n returns an unbiased int32 in [0, max). max < 1 is rejected with
// ErrInvalidBound.
func (r *Rand) Int31n(max int32) (int32, error) {
	if max < 1 {
		return 0, ErrInvalidBound
	}
	return int32(r.uint64n(uint64(max))), nil
}

// Int31Range returns an unbiased int32 in [min, max). max <= min is rejected
// with ErrInvalidBound.
func (r *Rand) Int31Range(min, max int32) (int32, error) {
	width := int64(max) - int64(min)
	if width < 1 {
		return 0, ErrInvalidBound
	}
	return int32(int64(min) + int64(r.uint64n(uint64(width)))), nil
}

// uint64n returns an unbiased value in [0, n) for n >= 1. It draws the
// minimal number of bits that can represent n-1, taken from the top of a full
// draw, and redraws on overshoot. The expected number of draws is below 2 for
// every n.
func (r *Rand) uint64n(n uint64) uint64 {
	if n <= 1 {
		return 0
	}
	shift := uint(64 - bits.Len64(n-1))
	for {
		v := r.src.Uint64() >> shift
		if v < n {
			return v
		}
	}
}

// Float32 returns a float32 in [0, 1) with 24 bits of resolution.
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint64()>>40) * (1.0 / (1 << 24))
}

// Float64 returns a float64 in [0, 1) with the standard 53 bits of
// resolution, i.e. uniformly over the 2^53 evenly spaced values k*2^-53.
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) * (1.0 / (1 << 53))
}

// Float64HighRes returns a float64 in [0, 1) drawn over all representable
// values in the interval, subnormals included, rather than the 2^53 evenly
// spaced values Float64 produces. Each leading all-zero 64-bit block lowers
// the exponent by 64; values below 2^-1074 are not representable, so the loop
// is bounded at ~17 blocks and returns 0 there. Considerably slower than
// Float64 and only worth it when the caller genuinely needs mass in the far
// left tail.
func (r *Rand) Float64HighRes() float64 {
	exponent := -64
	significand := r.src.Uint64()
	for significand == 0 {
		exponent -= 64
		if exponent < -1074 {
			return 0
		}
		significand = r.src.Uint64()
	}
	if shift := bits.LeadingZeros64(significand); shift != 0 {
		exponent -= shift
		significand <<= uint(shift)
		significand |= r.src.Uint64() >> (64 - uint(shift))
	}
	// Narrow to 53 bits before the float conversion: converting all 64 bits
	// can round the significand up to 2^64 and yield exactly 1. The dropped
	// low bits fold into a sticky bit so the narrowing never biases rounding.
	frac := significand >> 11
	if significand&(1<<11-1) != 0 {
		frac |= 1
	}
	return math.Ldexp(float64(frac), exponent+11)
}

// Bool returns the high bit of a fresh draw. The high bit is used rather than
// a low bit because low bits have short-period linear structure in the
// additive generator variants.
func (r *Rand) Bool() bool {
	return r.src.Uint64()&(1<<63) != 0
}

// Byte returns the top 8 bits of a fresh draw.
func (r *Rand) Byte() byte {
	return byte(r.src.Uint64() >> 56)
}

// Read fills p with random bytes, 8 per draw, and spends one extra draw on a
// 1-7 byte tail, emitting its low bytes first and discarding the rest. It
// implements io.Reader and never fails.
func (r *Rand) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, r.src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		v := r.src.Uint64()
		for i := range p {
			p[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}
