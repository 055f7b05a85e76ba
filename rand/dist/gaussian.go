// Package dist provides distribution samplers layered over the rand package's
// derived-value operations. Samplers hold a *rand.Rand and inherit its
// determinism and single-goroutine contract.
package dist

import (
	"math"

	"github.com/colgreen/Redzen-sub000/rand"
)

// Gaussian samples the standard normal distribution using the Marsaglia polar
// form of the Box-Muller transform. Each transform yields two independent
// deviates; the second is cached and returned by the following call.
type Gaussian struct {
	rnd      *rand.Rand
	hasSpare bool
	spare    float64
}

// NewGaussian returns a sampler drawing from rnd.
func NewGaussian(rnd *rand.Rand) *Gaussian {
	return &Gaussian{rnd: rnd}
}

// Sample returns the next standard normal deviate (mean 0, stddev 1).
func (g *Gaussian) Sample() float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}
	for {
		u := 2.0*g.rnd.Float64() - 1.0
		v := 2.0*g.rnd.Float64() - 1.0
		s := u*u + v*v
		if s >= 1.0 || s == 0.0 {
			continue
		}
		f := math.Sqrt(-2.0 * math.Log(s) / s)
		g.spare = v * f
		g.hasSpare = true
		return u * f
	}
}

// SampleScaled returns a normal deviate with the given mean and standard
// deviation.
func (g *Gaussian) SampleScaled(mean, stdDev float64) float64 {
	return mean + stdDev*g.Sample()
}

// Fill writes one deviate per element of out.
func (g *Gaussian) Fill(out []float64) {
	for i := range out {
		out[i] = g.Sample()
	}
}
