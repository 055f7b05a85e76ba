// Package sorting provides generic in-place sort engines that can reorder up
// to two satellite value slices in lockstep with a key slice: an introsort
// (hybrid quicksort, unstable, no allocation) and a timsort (adaptive natural
// merge sort, stable, near-linear on partially ordered input), plus a
// parallel quicksort variant for large inputs.
//
// Every element move performed by any engine moves the corresponding elements
// of all present satellite slices, so the pairing (keys[i], v[i], w[i]) that
// held before a sort holds after it. Engines borrow their input slices for
// the duration of the call and hold no state between calls other than
// explicitly reusable scratch buffers on TimSorter.
//
// Ordered-key entry points compare with the < operator directly; float keys
// containing NaN therefore have no defined order and should be sorted through
// a Func variant with a total comparison.
package sorting

import (
	"cmp"
	"errors"
)

// ErrLengthMismatch is returned when a satellite slice is not the same length
// as the key slice. It is reported before any element is moved.
var ErrLengthMismatch = errors.New("sorting: key and value slice lengths differ")

// ErrComparisonViolation is returned by the stable sort when a merge step
// observes an impossible run state, which can only be caused by a comparison
// function that is not a strict total order (inconsistent, or not
// transitive). The slice contents are a permutation of the input but their
// order is undefined.
var ErrComparisonViolation = errors.New("sorting: comparison function violates its contract")

func lessOrdered[K cmp.Ordered](a, b K) bool {
	return a < b
}

// IsSorted reports whether keys is in non-decreasing order.
func IsSorted[K cmp.Ordered](keys []K) bool {
	return IsSortedFunc(keys, lessOrdered[K])
}

// IsSortedFunc reports whether keys is in non-decreasing order under less.
func IsSortedFunc[K any](keys []K, less func(a, b K) bool) bool {
	for i := len(keys) - 1; i > 0; i-- {
		if less(keys[i], keys[i-1]) {
			return false
		}
	}
	return true
}

func checkSpans[K, V, W any](keys []K, v []V, w []W) error {
	if v != nil && len(v) != len(keys) {
		return ErrLengthMismatch
	}
	if w != nil && len(w) != len(keys) {
		return ErrLengthMismatch
	}
	return nil
}
