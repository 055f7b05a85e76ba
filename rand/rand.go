// Package rand provides fast, deterministic, non-cryptographic pseudo-random
// number generation: a family of statistically tested generator algorithms
// (xoshiro256 variants, xoshiro512**, xoroshiro128+, wyrand and a legacy
// xorshift) behind one Source contract, and a shared derived-value layer that
// turns the raw 64-bit stream into unbiased bounded integers, floats, doubles,
// booleans and byte buffers.
//
// Two generators built from the same algorithm and seed produce bit-identical
// output forever, on every platform. No generator is safe for concurrent use
// from multiple goroutines; use one per goroutine, or mint per-goroutine seeds
// from a SeedSource, which is the only internally locked type here.
package rand

import "errors"

// ErrInvalidBound is returned by bounded draws when the requested range is
// empty or inverted.
var ErrInvalidBound = errors.New("rand: invalid bound")

// Source is the raw generator contract: advance internal state by exactly one
// step per Uint64 call, and reinitialize deterministically from a 64-bit seed.
// Everything else in this package is derived from these two operations.
type Source interface {
	Uint64() uint64
	Seed(seed uint64)
}

// Algorithm selects a generator implementation at runtime. Code that knows
// the algorithm it wants at the call site should construct the concrete type
// directly and avoid the interface indirection.
type Algorithm uint8

const (
	AlgXoshiro256StarStar Algorithm = iota
	AlgXoshiro256PlusPlus
	AlgXoshiro256Plus
	AlgXoshiro512StarStar
	AlgXoroshiro128Plus
	AlgWyRand
	AlgXorShift128
)

func (a Algorithm) String() string {
	switch a {
	case AlgXoshiro256StarStar:
		return "xoshiro256**"
	case AlgXoshiro256PlusPlus:
		return "xoshiro256++"
	case AlgXoshiro256Plus:
		return "xoshiro256+"
	case AlgXoshiro512StarStar:
		return "xoshiro512**"
	case AlgXoroshiro128Plus:
		return "xoroshiro128+"
	case AlgWyRand:
		return "wyrand"
	case AlgXorShift128:
		return "xorshift128"
	default:
		return "unknown"
	}
}

func (a Algorithm) source(seed uint64) Source {
	switch a {
	case AlgXoshiro256PlusPlus:
		return NewXoshiro256PlusPlus(seed)
	case AlgXoshiro256Plus:
		return NewXoshiro256Plus(seed)
	case AlgXoshiro512StarStar:
		return NewXoshiro512StarStar(seed)
	case AlgXoroshiro128Plus:
		return NewXoroshiro128Plus(seed)
	case AlgWyRand:
		return NewWyRand(seed)
	case AlgXorShift128:
		return NewXorShift128(seed)
	default:
		return NewXoshiro256StarStar(seed)
	}
}

// Rand wraps a Source with the derived-value operations. The derivation logic
// lives here once, by composition, rather than being duplicated per generator;
// a generator contributes only its step function.
type Rand struct {
	src Source
}

// New returns a Rand over a fresh generator of the given algorithm, seeded
// with seed.
func New(algo Algorithm, seed uint64) *Rand {
	return &Rand{src: algo.source(seed)}
}

// NewSeeded is New with a seed minted from the default SeedSource.
func NewSeeded(algo Algorithm) *Rand {
	return New(algo, NextSeed())
}

// NewRand wraps an existing Source.
func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// Reseed reinitializes the underlying generator from seed, restarting its
// deterministic stream.
func (r *Rand) Reseed(seed uint64) {
	r.src.Seed(seed)
}

// Uint64 returns the next 64 raw bits from the underlying generator.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}
