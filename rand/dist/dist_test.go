package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/colgreen/Redzen-sub000/rand"
)

func TestGaussianMoments(t *testing.T) {
	g := NewGaussian(rand.New(rand.AlgXoshiro256StarStar, 1))
	const n = 200000
	var sum, sumSq float64
	within1 := 0
	for i := 0; i < n; i++ {
		v := g.Sample()
		sum += v
		sumSq += v * v
		if math.Abs(v) < 1 {
			within1++
		}
	}
	mean := sum / n
	stdDev := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean) > 0.02 {
		t.Errorf("mean %v, want ~0", mean)
	}
	if math.Abs(stdDev-1) > 0.02 {
		t.Errorf("stddev %v, want ~1", stdDev)
	}
	// P(|Z|<1) ~ 0.6827
	frac := float64(within1) / n
	if frac < 0.67 || frac > 0.70 {
		t.Errorf("fraction within 1 sigma %v, want ~0.683", frac)
	}
}

func TestGaussianScaled(t *testing.T) {
	g := NewGaussian(rand.New(rand.AlgXoshiro256StarStar, 2))
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := g.SampleScaled(10, 2)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stdDev := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean-10) > 0.05 {
		t.Errorf("mean %v, want ~10", mean)
	}
	if math.Abs(stdDev-2) > 0.05 {
		t.Errorf("stddev %v, want ~2", stdDev)
	}
}

func TestGaussianDeterministic(t *testing.T) {
	a := NewGaussian(rand.New(rand.AlgWyRand, 3))
	b := NewGaussian(rand.New(rand.AlgWyRand, 3))
	for i := 0; i < 10000; i++ {
		if a.Sample() != b.Sample() {
			t.Fatalf("diverged at sample %d", i)
		}
	}
}

func TestGaussianFill(t *testing.T) {
	g := NewGaussian(rand.New(rand.AlgXoshiro256PlusPlus, 4))
	out := make([]float64, 1000)
	g.Fill(out)
	allZero := true
	for _, v := range out {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("Fill left the slice zeroed")
	}
}

func TestUniformRanges(t *testing.T) {
	u := NewUniform(rand.New(rand.AlgXoroshiro128Plus, 5))
	for i := 0; i < 100000; i++ {
		if v := u.Sample(); v < 0 || v >= 1 {
			t.Fatalf("Sample() = %v out of [0,1)", v)
		}
		v, err := u.SampleRange(-3, 7)
		if err != nil {
			t.Fatal(err)
		}
		if v < -3 || v >= 7 {
			t.Fatalf("SampleRange(-3, 7) = %v out of range", v)
		}
		if s := u.SampleSigned(); s <= -1 || s >= 1 {
			t.Fatalf("SampleSigned() = %v out of (-1,1)", s)
		}
	}
}

func TestUniformRangeInvalid(t *testing.T) {
	u := NewUniform(rand.New(rand.AlgXoshiro256StarStar, 6))
	for _, c := range [][2]float64{{1, 1}, {2, 1}, {0, -5}} {
		if _, err := u.SampleRange(c[0], c[1]); !errors.Is(err, rand.ErrInvalidBound) {
			t.Fatalf("SampleRange(%v, %v): expected ErrInvalidBound, got %v", c[0], c[1], err)
		}
	}
}

func TestUniformSignedSymmetric(t *testing.T) {
	u := NewUniform(rand.New(rand.AlgXoshiro256StarStar, 7))
	const n = 100000
	neg := 0
	for i := 0; i < n; i++ {
		if u.SampleSigned() < 0 {
			neg++
		}
	}
	if neg < n*45/100 || neg > n*55/100 {
		t.Fatalf("SampleSigned sign heavily skewed: %d/%d negative", neg, n)
	}
}
