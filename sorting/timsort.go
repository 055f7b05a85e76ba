package sorting

import (
	"cmp"
	"math/bits"
)

// Timsort: adaptive, stable natural merge sort. The slice is scanned for
// already-ordered runs (strictly descending runs are reversed in place, which
// is stability-safe because they contain no equal neighbors), short runs are
// extended to a computed minimum length by binary insertion sort, and runs
// are merged under a stack invariant that keeps the merge tree balanced.
// Merges copy only the shorter run into scratch and switch into galloping
// (exponential search) mode when one side wins repeatedly.
//
// The merge-collapse invariant and the fixed run-stack bounds below follow
// the corrected algorithm of de Gouw et al., "OpenJDK's java.utils.
// Collection.sort() is broken" (2015): the naive single-entry invariant
// check can overflow the run stack for certain inputs. Both top entries are
// checked and the stack is sized 5/10/24/49 by input length. Do not revert
// this to the textbook form.

const (
	// minMerge is the slice length below which sorting degenerates to one
	// binary insertion sort pass, and the base of the minimum run length.
	minMerge = 32

	// minGallopInit is the number of consecutive wins one run needs before a
	// merge switches to galloping mode.
	minGallopInit = 7

	// initialTmpLen is the starting scratch capacity for large inputs.
	initialTmpLen = 256
)

// TimSorter is a reusable stable sort engine. Its scratch buffers and run
// stack grow on demand and persist across Sort calls, so a sorter reused for
// repeated sorts of similar-size slices stops allocating after the first
// call. A TimSorter must not be used from multiple goroutines concurrently.
type TimSorter[K, V, W any] struct {
	less func(a, b K) bool

	keys []K
	v    []V
	w    []W

	minGallop int

	tmpK []K
	tmpV []V
	tmpW []W

	runBase   []int
	runLen    []int
	stackSize int
}

// NewTimSorter returns a reusable stable sorter for an ordered key type.
func NewTimSorter[K cmp.Ordered, V, W any]() *TimSorter[K, V, W] {
	return NewTimSorterFunc[K, V, W](lessOrdered[K])
}

// NewTimSorterFunc returns a reusable stable sorter ordering keys by less,
// which must be a strict total order.
func NewTimSorterFunc[K, V, W any](less func(a, b K) bool) *TimSorter[K, V, W] {
	return &TimSorter[K, V, W]{less: less, minGallop: minGallopInit}
}

// Stable sorts keys in ascending order, preserving the relative order of
// equal keys.
func Stable[K cmp.Ordered](keys []K) error {
	return NewTimSorter[K, struct{}, struct{}]().Sort(keys, nil, nil)
}

// StableFunc sorts keys in ascending order under less, preserving the
// relative order of equal keys.
func StableFunc[K any](keys []K, less func(a, b K) bool) error {
	return NewTimSorterFunc[K, struct{}, struct{}](less).Sort(keys, nil, nil)
}

// StableKV sorts keys in ascending order, permuting vals identically and
// preserving the relative order of equal keys.
func StableKV[K cmp.Ordered, V any](keys []K, vals []V) error {
	return NewTimSorter[K, V, struct{}]().Sort(keys, vals, nil)
}

// StableKVFunc sorts keys in ascending order under less, permuting vals
// identically.
func StableKVFunc[K, V any](keys []K, vals []V, less func(a, b K) bool) error {
	return NewTimSorterFunc[K, V, struct{}](less).Sort(keys, vals, nil)
}

// StableKVW sorts keys in ascending order, permuting both value slices
// identically and preserving the relative order of equal keys.
func StableKVW[K cmp.Ordered, V, W any](keys []K, v1 []V, v2 []W) error {
	return NewTimSorter[K, V, W]().Sort(keys, v1, v2)
}

// StableKVWFunc sorts keys in ascending order under less, permuting both
// value slices identically.
func StableKVWFunc[K, V, W any](keys []K, v1 []V, v2 []W, less func(a, b K) bool) error {
	return NewTimSorterFunc[K, V, W](less).Sort(keys, v1, v2)
}

// Sort sorts keys in ascending order, permuting the satellite slices v and w
// identically. Either or both may be nil; if non-nil they must have the same
// length as keys, checked before any element is moved. The only other error
// case is ErrComparisonViolation from a less function that is not a strict
// total order.
func (s *TimSorter[K, V, W]) Sort(keys []K, v []V, w []W) (err error) {
	if err = checkSpans(keys, v, w); err != nil {
		return err
	}
	n := len(keys)
	if n < 2 {
		return nil
	}

	s.keys = keys
	s.v = v
	s.w = w
	s.minGallop = minGallopInit
	s.stackSize = 0
	defer func() {
		// Scratch survives for reuse; references to caller slices do not.
		s.keys = nil
		s.v = nil
		s.w = nil
	}()

	if n < minMerge {
		initLen := s.countRunAndMakeAscending(0, n)
		s.binarySort(0, n, initLen)
		return nil
	}

	s.ensureRunStack(n)

	lo, remaining := 0, n
	minRun := minRunLength(n)
	for {
		runLen := s.countRunAndMakeAscending(lo, lo+remaining)
		if runLen < minRun {
			force := remaining
			if force > minRun {
				force = minRun
			}
			s.binarySort(lo, lo+force, lo+runLen)
			runLen = force
		}
		s.pushRun(lo, runLen)
		if err = s.mergeCollapse(); err != nil {
			return err
		}
		lo += runLen
		remaining -= runLen
		if remaining == 0 {
			break
		}
	}
	return s.mergeForceCollapse()
}

// minRunLength computes the minimum run length for an input of length n:
// n itself when n < minMerge, otherwise a value in [minMerge/2, minMerge]
// such that n/minRun is a power of two or slightly below one, which makes
// the final merge tree balanced.
func minRunLength(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// countRunAndMakeAscending identifies the natural run starting at lo within
// keys[lo:hi) and returns its length, reversing it first if it was strictly
// descending.
func (s *TimSorter[K, V, W]) countRunAndMakeAscending(lo, hi int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}
	if s.less(s.keys[runHi], s.keys[lo]) {
		// Strictly descending; equal neighbors would make the reversal
		// unstable, so the run ends at the first non-descending pair.
		runHi++
		for runHi < hi && s.less(s.keys[runHi], s.keys[runHi-1]) {
			runHi++
		}
		s.reverseRange(lo, runHi)
	} else {
		runHi++
		for runHi < hi && !s.less(s.keys[runHi], s.keys[runHi-1]) {
			runHi++
		}
	}
	return runHi - lo
}

func (s *TimSorter[K, V, W]) reverseRange(lo, hi int) {
	hi--
	for lo < hi {
		s.swap(lo, hi)
		lo++
		hi--
	}
}

// binarySort extends the sorted prefix keys[lo:start) across keys[lo:hi) by
// binary insertion, shifting with bulk copies.
func (s *TimSorter[K, V, W]) binarySort(lo, hi, start int) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pk := s.keys[start]
		var pv V
		var pw W
		if s.v != nil {
			pv = s.v[start]
		}
		if s.w != nil {
			pw = s.w[start]
		}

		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if s.less(pk, s.keys[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		s.copyRange(left+1, left, start-left)
		s.keys[left] = pk
		if s.v != nil {
			s.v[left] = pv
		}
		if s.w != nil {
			s.w[left] = pw
		}
	}
}

// ensureRunStack sizes the run stack for an input of length n. The bounds are
// the corrected ones that hold under the two-entry invariant check; they are
// never exceeded, so the arrays never reallocate mid-sort.
func (s *TimSorter[K, V, W]) ensureRunStack(n int) {
	stackLen := 49
	switch {
	case n < 120:
		stackLen = 5
	case n < 1542:
		stackLen = 10
	case n < 119151:
		stackLen = 24
	}
	if len(s.runBase) < stackLen {
		s.runBase = make([]int, stackLen)
		s.runLen = make([]int, stackLen)
	}
}

func (s *TimSorter[K, V, W]) pushRun(base, length int) {
	s.runBase[s.stackSize] = base
	s.runLen[s.stackSize] = length
	s.stackSize++
}

// mergeCollapse restores the run-stack invariants
//
//	runLen[i-2] > runLen[i-1] + runLen[i]
//	runLen[i-1] > runLen[i]
//
// by merging, always into the smaller neighbor. Both of the top stack entries
// are examined, not just the topmost, per the corrected algorithm.
func (s *TimSorter[K, V, W]) mergeCollapse() error {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if (n > 0 && s.runLen[n-1] <= s.runLen[n]+s.runLen[n+1]) ||
			(n > 1 && s.runLen[n-2] <= s.runLen[n-1]+s.runLen[n]) {
			if s.runLen[n-1] < s.runLen[n+1] {
				n--
			}
		} else if s.runLen[n] > s.runLen[n+1] {
			break
		}
		if err := s.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeForceCollapse merges the whole remaining stack down to a single run.
func (s *TimSorter[K, V, W]) mergeForceCollapse() error {
	for s.stackSize > 1 {
		n := s.stackSize - 2
		if n > 0 && s.runLen[n-1] < s.runLen[n+1] {
			n--
		}
		if err := s.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeAt merges stack runs i and i+1. The prefix of run1 already below all
// of run2 and the suffix of run2 already above all of run1 are located by
// galloping and left in place; only the overlap is merged, from whichever
// side makes the scratch copy smaller.
func (s *TimSorter[K, V, W]) mergeAt(i int) error {
	base1, len1 := s.runBase[i], s.runLen[i]
	base2, len2 := s.runBase[i+1], s.runLen[i+1]

	s.runLen[i] = len1 + len2
	if i == s.stackSize-3 {
		s.runBase[i+1] = s.runBase[i+2]
		s.runLen[i+1] = s.runLen[i+2]
	}
	s.stackSize--

	k := s.gallopRight(s.keys[base2], s.keys, base1, len1, 0)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return nil
	}

	len2 = s.gallopLeft(s.keys[base1+len1-1], s.keys, base2, len2, len2-1)
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return s.mergeLo(base1, len1, base2, len2)
	}
	return s.mergeHi(base1, len1, base2, len2)
}

// gallopLeft returns the leftmost insertion point for key in the sorted
// window a[base:base+length), i.e. the count of leading elements < key.
// The exponential search starts at hint and the offsets it brackets are
// resolved by binary search.
func (s *TimSorter[K, V, W]) gallopLeft(key K, a []K, base, length, hint int) int {
	lastOfs, ofs := 0, 1
	if s.less(a[base+hint], key) {
		// Gallop right until a[base+hint+lastOfs] < key <= a[base+hint+ofs].
		maxOfs := length - hint
		for ofs < maxOfs && s.less(a[base+hint+ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// Gallop left until a[base+hint-ofs] < key <= a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && !s.less(a[base+hint-ofs], key) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if s.less(a[base+m], key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight returns the rightmost insertion point for key in the sorted
// window a[base:base+length), i.e. the count of leading elements <= key.
func (s *TimSorter[K, V, W]) gallopRight(key K, a []K, base, length, hint int) int {
	lastOfs, ofs := 0, 1
	if s.less(key, a[base+hint]) {
		// Gallop left until a[base+hint-ofs] <= key < a[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && s.less(key, a[base+hint-ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// Gallop right until a[base+hint+lastOfs] <= key < a[base+hint+ofs].
		maxOfs := length - hint
		for ofs < maxOfs && !s.less(key, a[base+hint+ofs]) {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		if s.less(key, a[base+m]) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// mergeLo merges two adjacent sorted runs where the first is the shorter: it
// is copied to scratch and the merge fills left to right. The first element
// of run2 is known to be below run1's first and run1's last above all of
// run2, which the short-circuit paths below rely on.
func (s *TimSorter[K, V, W]) mergeLo(base1, len1, base2, len2 int) error {
	s.ensureTmp(len1)
	s.copyToTmp(base1, len1)

	cursor1 := 0
	cursor2 := base2
	dest := base1

	s.move(dest, cursor2)
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		s.copyFromTmp(dest, cursor1, len1)
		return nil
	}
	if len1 == 1 {
		s.copyRange(dest, cursor2, len2)
		s.moveFromTmp(dest+len2, cursor1)
		return nil
	}

	minGallop := s.minGallop
outer:
	for {
		count1, count2 := 0, 0

		// One-at-a-time mode until one run wins minGallop times in a row.
		for {
			if s.less(s.keys[cursor2], s.tmpK[cursor1]) {
				s.move(dest, cursor2)
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				s.moveFromTmp(dest, cursor1)
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		// Galloping mode: bulk-copy the stretch each run wins outright,
		// stay here while it keeps paying off.
		for {
			count1 = s.gallopRight(s.keys[cursor2], s.tmpK, cursor1, len1, 0)
			if count1 != 0 {
				s.copyFromTmp(dest, cursor1, count1)
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			s.move(dest, cursor2)
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2 = s.gallopLeft(s.tmpK[cursor1], s.keys, cursor2, len2, 0)
			if count2 != 0 {
				s.copyRange(dest, cursor2, count2)
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			s.moveFromTmp(dest, cursor1)
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}
			minGallop--
			if count1 < minGallopInit && count2 < minGallopInit {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len1 == 1:
		s.copyRange(dest, cursor2, len2)
		s.moveFromTmp(dest+len2, cursor1)
	case len1 == 0:
		// Run1 exhausted before its final element was placed: impossible
		// under a strict total order.
		return ErrComparisonViolation
	default:
		s.copyFromTmp(dest, cursor1, len1)
	}
	return nil
}

// mergeHi is the mirror of mergeLo for the case where the second run is the
// shorter: it is copied to scratch and the merge fills right to left.
func (s *TimSorter[K, V, W]) mergeHi(base1, len1, base2, len2 int) error {
	s.ensureTmp(len2)
	s.copyToTmp(base2, len2)

	cursor1 := base1 + len1 - 1
	cursor2 := len2 - 1
	dest := base2 + len2 - 1

	s.move(dest, cursor1)
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		s.copyFromTmp(dest-(len2-1), 0, len2)
		return nil
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		s.copyRange(dest+1, cursor1+1, len1)
		s.moveFromTmp(dest, cursor2)
		return nil
	}

	minGallop := s.minGallop
outer:
	for {
		count1, count2 := 0, 0

		for {
			if s.less(s.tmpK[cursor2], s.keys[cursor1]) {
				s.move(dest, cursor1)
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				s.moveFromTmp(dest, cursor2)
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			count1 = len1 - s.gallopRight(s.tmpK[cursor2], s.keys, base1, len1, len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				s.copyRange(dest+1, cursor1+1, count1)
				if len1 == 0 {
					break outer
				}
			}
			s.moveFromTmp(dest, cursor2)
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			count2 = len2 - s.gallopLeft(s.keys[cursor1], s.tmpK, 0, len2, len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				s.copyFromTmp(dest+1, cursor2+1, count2)
				if len2 <= 1 {
					break outer
				}
			}
			s.move(dest, cursor1)
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}
			minGallop--
			if count1 < minGallopInit && count2 < minGallopInit {
				break
			}
		}
		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2
	}
	if minGallop < 1 {
		minGallop = 1
	}
	s.minGallop = minGallop

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		s.copyRange(dest+1, cursor1+1, len1)
		s.moveFromTmp(dest, cursor2)
	case len2 == 0:
		return ErrComparisonViolation
	default:
		s.copyFromTmp(dest-(len2-1), 0, len2)
	}
	return nil
}

// ensureTmp guarantees scratch capacity for minCapacity elements: starting at
// min(n/2, 256) and doubling on demand, never beyond n/2 (a merged shorter
// run can never exceed half the input). Satellite scratch is allocated only
// for present satellite slices.
func (s *TimSorter[K, V, W]) ensureTmp(minCapacity int) {
	if len(s.tmpK) < minCapacity || (s.v != nil && len(s.tmpV) < minCapacity) ||
		(s.w != nil && len(s.tmpW) < minCapacity) {
		n := len(s.keys)
		size := initialTmpLen
		if minCapacity > size {
			size = 1 << uint(bits.Len(uint(minCapacity-1)))
		}
		if size > n/2 {
			size = n / 2
		}
		if size < minCapacity {
			size = minCapacity
		}
		if len(s.tmpK) < size {
			s.tmpK = make([]K, size)
		}
		if s.v != nil && len(s.tmpV) < size {
			s.tmpV = make([]V, size)
		}
		if s.w != nil && len(s.tmpW) < size {
			s.tmpW = make([]W, size)
		}
	}
}

func (s *TimSorter[K, V, W]) swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	if s.v != nil {
		s.v[i], s.v[j] = s.v[j], s.v[i]
	}
	if s.w != nil {
		s.w[i], s.w[j] = s.w[j], s.w[i]
	}
}

func (s *TimSorter[K, V, W]) move(dst, src int) {
	s.keys[dst] = s.keys[src]
	if s.v != nil {
		s.v[dst] = s.v[src]
	}
	if s.w != nil {
		s.w[dst] = s.w[src]
	}
}

// copyRange copies n elements from src to dst within the main slices;
// overlapping ranges are safe (memmove semantics of copy).
func (s *TimSorter[K, V, W]) copyRange(dst, src, n int) {
	copy(s.keys[dst:dst+n], s.keys[src:src+n])
	if s.v != nil {
		copy(s.v[dst:dst+n], s.v[src:src+n])
	}
	if s.w != nil {
		copy(s.w[dst:dst+n], s.w[src:src+n])
	}
}

func (s *TimSorter[K, V, W]) copyToTmp(src, n int) {
	copy(s.tmpK[:n], s.keys[src:src+n])
	if s.v != nil {
		copy(s.tmpV[:n], s.v[src:src+n])
	}
	if s.w != nil {
		copy(s.tmpW[:n], s.w[src:src+n])
	}
}

func (s *TimSorter[K, V, W]) copyFromTmp(dst, tmpIdx, n int) {
	copy(s.keys[dst:dst+n], s.tmpK[tmpIdx:tmpIdx+n])
	if s.v != nil {
		copy(s.v[dst:dst+n], s.tmpV[tmpIdx:tmpIdx+n])
	}
	if s.w != nil {
		copy(s.w[dst:dst+n], s.tmpW[tmpIdx:tmpIdx+n])
	}
}

func (s *TimSorter[K, V, W]) moveFromTmp(dst, tmpIdx int) {
	s.keys[dst] = s.tmpK[tmpIdx]
	if s.v != nil {
		s.v[dst] = s.tmpV[tmpIdx]
	}
	if s.w != nil {
		s.w[dst] = s.tmpW[tmpIdx]
	}
}
