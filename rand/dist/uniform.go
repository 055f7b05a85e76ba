package dist

import "github.com/colgreen/Redzen-sub000/rand"

// Uniform samples the continuous uniform distribution.
type Uniform struct {
	rnd *rand.Rand
}

// NewUniform returns a sampler drawing from rnd.
func NewUniform(rnd *rand.Rand) *Uniform {
	return &Uniform{rnd: rnd}
}

// Sample returns a value in [0, 1).
func (u *Uniform) Sample() float64 {
	return u.rnd.Float64()
}

// SampleRange returns a value in [min, max). max <= min is rejected with
// rand.ErrInvalidBound.
func (u *Uniform) SampleRange(min, max float64) (float64, error) {
	if max <= min {
		return 0, rand.ErrInvalidBound
	}
	return min + u.rnd.Float64()*(max-min), nil
}

// SampleSigned returns a value in (-1, 1): a magnitude in [0, 1) with an
// independent sign bit, so the distribution is symmetric about zero.
func (u *Uniform) SampleSigned() float64 {
	v := u.rnd.Float64()
	if u.rnd.Bool() {
		return -v
	}
	return v
}

// Fill writes one [0, 1) sample per element of out.
func (u *Uniform) Fill(out []float64) {
	for i := range out {
		out[i] = u.rnd.Float64()
	}
}
