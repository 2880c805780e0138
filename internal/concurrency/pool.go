// Package concurrency provides a small bounded worker pool used to resolve
// batches of WWNs concurrently.
package concurrency

import (
	"runtime"
	"sync"
)

// MaxWorkers caps the pool size; registry lookups are memory-bound and gain
// nothing from wider fan-out.
const MaxWorkers = 10

// Execute processes items concurrently with at most workers goroutines and
// returns the results in input order.
//
// If workers is 0, the number of logical CPUs is used, capped at
// [MaxWorkers].
func Execute[T any, R any](workers int, items []T, processor func(int, T) R) []R {
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	workers = min(max(workers, 1), MaxWorkers)

	results := make([]R, len(items))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, item := range items {
		wg.Add(1)
		go func(idx int, itm T) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[idx] = processor(idx, itm)
		}(i, item)
	}

	wg.Wait()
	return results
}
