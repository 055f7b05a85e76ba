package sorting

import (
	"cmp"
	"sync"
)

// parallelThreshold is the partition size below which SortParallel stops
// forking and finishes sequentially. Partitions produced by quicksort are
// disjoint index ranges, so the forked goroutines share no mutable state.
const parallelThreshold = 8192

// SortParallel sorts keys in ascending order, forking goroutines for large
// partitions. Not stable. Worth it only for large slices of cheaply
// comparable elements; below the fork threshold it is exactly Sort.
func SortParallel[K cmp.Ordered](keys []K) {
	SortParallelFunc(keys, lessOrdered[K])
}

// SortParallelFunc is SortParallel with an explicit less function.
func SortParallelFunc[K any](keys []K, less func(a, b K) bool) {
	var wg sync.WaitGroup
	parallelQuicksort(keys, less, &wg)
	wg.Wait()
}

func parallelQuicksort[K any](keys []K, less func(a, b K) bool, wg *sync.WaitGroup) {
	for len(keys) > parallelThreshold {
		s := introSorter[K, struct{}, struct{}]{keys: keys, less: less}
		p := s.partition(0, len(keys)-1)

		left := keys[:p]
		wg.Add(1)
		go func() {
			defer wg.Done()
			parallelQuicksort(left, less, wg)
		}()
		keys = keys[p+1:]
	}
	SortFunc(keys, less)
}
