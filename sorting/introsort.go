package sorting

import (
	"cmp"
	"math/bits"
)

// Introsort: quicksort with median-of-three pivot selection, switching to
// insertion sort below a small partition size and to heapsort when recursion
// depth exceeds 2*log2(n), which bounds the worst case at O(n log n). Not
// stable: equal keys may end up in any relative order, so callers that need
// deterministic tie order should use the stable sort or disambiguate keys.

// introSizeThreshold is the partition size at or below which insertion sort
// takes over.
const introSizeThreshold = 16

// Sort sorts keys in ascending order.
func Sort[K cmp.Ordered](keys []K) {
	SortFunc(keys, lessOrdered[K])
}

// SortFunc sorts keys in ascending order under less.
func SortFunc[K any](keys []K, less func(a, b K) bool) {
	s := introSorter[K, struct{}, struct{}]{keys: keys, less: less}
	s.sort()
}

// SortKV sorts keys in ascending order, permuting vals identically.
func SortKV[K cmp.Ordered, V any](keys []K, vals []V) error {
	return SortKVFunc(keys, vals, lessOrdered[K])
}

// SortKVFunc sorts keys in ascending order under less, permuting vals
// identically.
func SortKVFunc[K, V any](keys []K, vals []V, less func(a, b K) bool) error {
	if err := checkSpans[K, V, struct{}](keys, vals, nil); err != nil {
		return err
	}
	s := introSorter[K, V, struct{}]{keys: keys, v: vals, less: less}
	s.sort()
	return nil
}

// SortKVW sorts keys in ascending order, permuting both value slices
// identically.
func SortKVW[K cmp.Ordered, V, W any](keys []K, v1 []V, v2 []W) error {
	return SortKVWFunc(keys, v1, v2, lessOrdered[K])
}

// SortKVWFunc sorts keys in ascending order under less, permuting both value
// slices identically.
func SortKVWFunc[K, V, W any](keys []K, v1 []V, v2 []W, less func(a, b K) bool) error {
	if err := checkSpans(keys, v1, v2); err != nil {
		return err
	}
	s := introSorter[K, V, W]{keys: keys, v: v1, w: v2, less: less}
	s.sort()
	return nil
}

type introSorter[K, V, W any] struct {
	keys []K
	v    []V
	w    []W
	less func(a, b K) bool
}

func (s *introSorter[K, V, W]) sort() {
	n := len(s.keys)
	if n < 2 {
		return
	}
	s.sortRange(0, n-1, 2*(bits.Len(uint(n))-1))
}

// sortRange sorts keys[lo..hi] inclusive. The second recursive call is
// replaced by iteration on the left partition.
func (s *introSorter[K, V, W]) sortRange(lo, hi, depthLimit int) {
	for hi > lo {
		size := hi - lo + 1
		if size <= introSizeThreshold {
			switch size {
			case 1:
			case 2:
				s.swapIfGreater(lo, hi)
			case 3:
				s.swapIfGreater(lo, hi-1)
				s.swapIfGreater(lo, hi)
				s.swapIfGreater(hi-1, hi)
			default:
				s.insertionSort(lo, hi)
			}
			return
		}
		if depthLimit == 0 {
			s.heapSort(lo, hi)
			return
		}
		depthLimit--
		p := s.partition(lo, hi)
		s.sortRange(p+1, hi, depthLimit)
		hi = p - 1
	}
}

// partition orders keys[lo], keys[mid] and keys[hi] by swapping, so the
// median-of-three doubles as useful partitioning work, parks the pivot at
// hi-1 and partitions the interior around it. The ordered endpoints act as
// sentinels for the scan loops; the explicit bounds only matter when less is
// not a valid total order, in which case the result is an arbitrary
// permutation rather than a crash.
func (s *introSorter[K, V, W]) partition(lo, hi int) int {
	mid := lo + (hi-lo)/2
	s.swapIfGreater(lo, mid)
	s.swapIfGreater(lo, hi)
	s.swapIfGreater(mid, hi)

	pivot := s.keys[mid]
	s.swap(mid, hi-1)

	left, right := lo, hi-1
	for left < right {
		left++
		for left < hi && s.less(s.keys[left], pivot) {
			left++
		}
		right--
		for right > lo && s.less(pivot, s.keys[right]) {
			right--
		}
		if left >= right {
			break
		}
		s.swap(left, right)
	}
	s.swap(left, hi-1)
	return left
}

func (s *introSorter[K, V, W]) insertionSort(lo, hi int) {
	for i := lo; i < hi; i++ {
		j := i
		tk := s.keys[i+1]
		var tv V
		var tw W
		if s.v != nil {
			tv = s.v[i+1]
		}
		if s.w != nil {
			tw = s.w[i+1]
		}
		for j >= lo && s.less(tk, s.keys[j]) {
			s.move(j+1, j)
			j--
		}
		s.keys[j+1] = tk
		if s.v != nil {
			s.v[j+1] = tv
		}
		if s.w != nil {
			s.w[j+1] = tw
		}
	}
}

func (s *introSorter[K, V, W]) heapSort(lo, hi int) {
	n := hi - lo + 1
	for i := n / 2; i >= 1; i-- {
		s.downHeap(i, n, lo)
	}
	for i := n; i > 1; i-- {
		s.swap(lo, lo+i-1)
		s.downHeap(1, i-1, lo)
	}
}

func (s *introSorter[K, V, W]) downHeap(i, n, lo int) {
	dk := s.keys[lo+i-1]
	var dv V
	var dw W
	if s.v != nil {
		dv = s.v[lo+i-1]
	}
	if s.w != nil {
		dw = s.w[lo+i-1]
	}
	for i <= n/2 {
		child := 2 * i
		if child < n && s.less(s.keys[lo+child-1], s.keys[lo+child]) {
			child++
		}
		if !s.less(dk, s.keys[lo+child-1]) {
			break
		}
		s.move(lo+i-1, lo+child-1)
		i = child
	}
	s.keys[lo+i-1] = dk
	if s.v != nil {
		s.v[lo+i-1] = dv
	}
	if s.w != nil {
		s.w[lo+i-1] = dw
	}
}

func (s *introSorter[K, V, W]) swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	if s.v != nil {
		s.v[i], s.v[j] = s.v[j], s.v[i]
	}
	if s.w != nil {
		s.w[i], s.w[j] = s.w[j], s.w[i]
	}
}

func (s *introSorter[K, V, W]) swapIfGreater(i, j int) {
	if s.less(s.keys[j], s.keys[i]) {
		s.swap(i, j)
	}
}

func (s *introSorter[K, V, W]) move(dst, src int) {
	s.keys[dst] = s.keys[src]
	if s.v != nil {
		s.v[dst] = s.v[src]
	}
	if s.w != nil {
		s.w[dst] = s.w[src]
	}
}
