package sorting

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/colgreen/Redzen-sub000/rand"
)

func TestStablePatterns(t *testing.T) {
	rnd := rand.New(rand.AlgXoshiro256StarStar, 10)
	for _, n := range testLengths {
		for name, keys := range testPatterns(n, rnd) {
			orig := slices.Clone(keys)
			if err := Stable(keys); err != nil {
				t.Fatal(err)
			}
			requireSortedPermutation(t, name+"/"+strconv.Itoa(n), keys, orig)
		}
	}
}

// TestStableMergeShapes drives the merge machinery through its distinct
// paths: long pre-sorted halves (bulk galloping), short runs (binary
// insertion), interleavings (one-at-a-time merging) and single-element
// tails.
func TestStableMergeShapes(t *testing.T) {
	shapes := map[string]func(n int) []int{
		"two-halves": func(n int) []int {
			keys := make([]int, n)
			for i := 0; i < n/2; i++ {
				keys[i] = 2 * i
			}
			for i := n / 2; i < n; i++ {
				keys[i] = 2*(i-n/2) + 1
			}
			return keys
		},
		"interleaved": func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				if i%2 == 0 {
					keys[i] = i
				} else {
					keys[i] = n - i
				}
			}
			return keys
		},
		"ascending-then-descending": func(n int) []int {
			keys := make([]int, n)
			for i := 0; i < n/2; i++ {
				keys[i] = i
			}
			for i := n / 2; i < n; i++ {
				keys[i] = n - i
			}
			return keys
		},
		"sorted-with-tail": func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = i
			}
			if n > 0 {
				keys[n-1] = -1
			}
			return keys
		},
		"one-out-of-place": func(n int) []int {
			keys := make([]int, n)
			for i := range keys {
				keys[i] = i
			}
			if n > 2 {
				keys[1], keys[n-1] = keys[n-1], keys[1]
			}
			return keys
		},
	}
	for name, build := range shapes {
		for _, n := range []int{0, 1, 2, 33, 64, 1000, 10000, 120000} {
			keys := build(n)
			orig := slices.Clone(keys)
			if err := Stable(keys); err != nil {
				t.Fatal(err)
			}
			requireSortedPermutation(t, name+"/"+strconv.Itoa(n), keys, orig)
		}
	}
}

func TestStableKVPairing(t *testing.T) {
	for _, n := range testLengths {
		keys := make([]int, n)
		vals := make([]int, n)
		for i := 0; i < n; i++ {
			keys[i] = n - 1 - i
			vals[i] = i
		}
		if err := StableKV(keys, vals); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			if keys[i]+vals[i] != n-1 {
				t.Fatalf("n=%d: pairing broken at %d", n, i)
			}
		}
	}
}

func TestStableKVWPairing(t *testing.T) {
	rnd := rand.New(rand.AlgXoshiro512StarStar, 11)
	for _, n := range []int{0, 1, 31, 32, 1000, 50000} {
		keys := make([]int, n)
		v1 := make([]int, n)
		v2 := make([]string, n)
		for i := 0; i < n; i++ {
			k, _ := rnd.Int31n(1000)
			keys[i] = int(k)
			v1[i] = -keys[i]
			v2[i] = strconv.Itoa(keys[i])
		}
		if err := StableKVW(keys, v1, v2); err != nil {
			t.Fatal(err)
		}
		if !IsSorted(keys) {
			t.Fatalf("n=%d: keys not sorted", n)
		}
		for i := 0; i < n; i++ {
			if v1[i] != -keys[i] || v2[i] != strconv.Itoa(keys[i]) {
				t.Fatalf("n=%d: satellites detached at %d", n, i)
			}
		}
	}
}

func TestStability(t *testing.T) {
	rnd := rand.New(rand.AlgXoshiro256StarStar, 12)
	for _, n := range []int{10, 31, 32, 100, 1000, 10000, 65536} {
		keys := make([]int, n)
		idx := make([]int, n)
		for i := 0; i < n; i++ {
			k, _ := rnd.Int31n(13) // many duplicates
			keys[i] = int(k)
			idx[i] = i
		}
		if err := StableKV(keys, idx); err != nil {
			t.Fatal(err)
		}
		for i := 1; i < n; i++ {
			if keys[i-1] > keys[i] {
				t.Fatalf("n=%d: keys not sorted at %d", n, i)
			}
			if keys[i-1] == keys[i] && idx[i-1] >= idx[i] {
				t.Fatalf("n=%d: stability violated at %d: indices %d, %d", n, i, idx[i-1], idx[i])
			}
		}
	}
}

func TestStableTieOrder(t *testing.T) {
	// Unlike the introsort, equal keys must keep their original order, so
	// the result here is fully specified.
	type tag struct {
		s    string
		orig int
	}
	keys := []int{5, 3, 5, 1, 3}
	vals := []tag{{"e", 0}, {"c", 1}, {"e", 2}, {"a", 3}, {"c", 4}}
	if err := StableKV(keys, vals); err != nil {
		t.Fatal(err)
	}
	want := []tag{{"a", 3}, {"c", 1}, {"c", 4}, {"e", 0}, {"e", 2}}
	if !slices.Equal(keys, []int{1, 3, 3, 5, 5}) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("vals = %v, want %v", vals, want)
		}
	}
}

func countingLess(counter *int) func(a, b int) bool {
	return func(a, b int) bool {
		*counter++
		return a < b
	}
}

// TestAdaptivity checks the comparison counts that make timsort worth having:
// near-linear on sorted and nearly sorted input, n log n on random input.
func TestAdaptivity(t *testing.T) {
	const n = 1 << 16

	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	var sortedComps int
	if err := StableFunc(sorted, countingLess(&sortedComps)); err != nil {
		t.Fatal(err)
	}
	if sortedComps > 2*n {
		t.Errorf("sorted input took %d comparisons, want <= %d", sortedComps, 2*n)
	}

	nearly := make([]int, n)
	for i := range nearly {
		nearly[i] = i
	}
	nearly[0], nearly[n-1] = nearly[n-1], nearly[0]
	var nearlyComps int
	if err := StableFunc(nearly, countingLess(&nearlyComps)); err != nil {
		t.Fatal(err)
	}
	if nearlyComps > 4*n {
		t.Errorf("nearly sorted input took %d comparisons, want <= %d", nearlyComps, 4*n)
	}

	rnd := rand.New(rand.AlgXoshiro256StarStar, 13)
	random := make([]int, n)
	for i := range random {
		random[i] = int(rnd.Int31())
	}
	var randomComps int
	if err := StableFunc(random, countingLess(&randomComps)); err != nil {
		t.Fatal(err)
	}
	if randomComps < 4*sortedComps {
		t.Errorf("random input took %d comparisons vs %d for sorted; expected far more",
			randomComps, sortedComps)
	}
}

func TestStableLengthMismatch(t *testing.T) {
	keys := []int{2, 1}
	if err := StableKV(keys, []int{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if err := StableKVW(keys, []int{1, 2}, []int{}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if keys[0] != 2 || keys[1] != 1 {
		t.Fatal("keys mutated by a rejected call")
	}
}

func TestStableFuncInconsistentLessNoCorruption(t *testing.T) {
	// A less that is not a total order yields an arbitrary permutation and
	// possibly ErrComparisonViolation, but never a panic and never element
	// loss.
	for seed := uint64(0); seed < 50; seed++ {
		rnd := rand.New(rand.AlgWyRand, seed)
		keys := make([]int, 2000)
		for i := range keys {
			keys[i] = i
		}
		orig := slices.Clone(keys)
		err := StableFunc(keys, func(a, b int) bool { return rnd.Bool() })
		if err != nil && !errors.Is(err, ErrComparisonViolation) {
			t.Fatalf("seed %d: unexpected error %v", seed, err)
		}
		slices.Sort(keys)
		if !slices.Equal(keys, orig) {
			t.Fatalf("seed %d: elements lost or duplicated", seed)
		}
	}
}

func TestTimSorterReuse(t *testing.T) {
	s := NewTimSorter[int, int, struct{}]()
	rnd := rand.New(rand.AlgXoshiro256StarStar, 14)
	for _, n := range []int{10000, 10, 5000, 0, 70000, 10000} {
		keys := make([]int, n)
		vals := make([]int, n)
		for i := 0; i < n; i++ {
			keys[i] = int(rnd.Int31())
			vals[i] = -keys[i]
		}
		if err := s.Sort(keys, vals, nil); err != nil {
			t.Fatal(err)
		}
		if !IsSorted(keys) {
			t.Fatalf("n=%d: not sorted", n)
		}
		for i := 0; i < n; i++ {
			if vals[i] != -keys[i] {
				t.Fatalf("n=%d: satellite detached at %d", n, i)
			}
		}
	}
}

func TestStableStructKeysFunc(t *testing.T) {
	type rec struct {
		name string
		age  int
	}
	recs := []rec{{"d", 40}, {"b", 20}, {"a", 20}, {"c", 30}}
	keys := make([]rec, len(recs))
	copy(keys, recs)
	if err := StableFunc(keys, func(a, b rec) bool { return a.age < b.age }); err != nil {
		t.Fatal(err)
	}
	want := []rec{{"b", 20}, {"a", 20}, {"c", 30}, {"d", 40}}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func BenchmarkStable(b *testing.B) {
	rnd := rand.New(rand.AlgXoshiro256StarStar, 1)
	for _, n := range []int{1000, 10000, 100000} {
		data := make([]int, n)
		for i := range data {
			data[i] = int(rnd.Int31())
		}
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			s := NewTimSorter[int, struct{}, struct{}]()
			keys := make([]int, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(keys, data)
				if err := s.Sort(keys, nil, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStableSorted(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		data := make([]int, n)
		for i := range data {
			data[i] = i
		}
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			s := NewTimSorter[int, struct{}, struct{}]()
			keys := make([]int, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(keys, data)
				if err := s.Sort(keys, nil, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
