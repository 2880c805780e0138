package concurrency

import (
	"strconv"
	"sync/atomic"
	"testing"
)

func TestExecutePreservesOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	results := Execute(4, items, func(idx int, item int) string {
		return strconv.Itoa(item * 2)
	})

	if len(results) != len(items) {
		t.Fatalf("Execute() returned %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if want := strconv.Itoa(i * 2); r != want {
			t.Errorf("results[%d] = %q, want %q", i, r, want)
		}
	}
}

func TestExecuteZeroWorkersAutoDetects(t *testing.T) {
	results := Execute(0, []int{1, 2, 3}, func(idx int, item int) int {
		return item + idx
	})
	want := []int{1, 3, 5}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %d, want %d", i, results[i], want[i])
		}
	}
}

func TestExecuteBoundsConcurrency(t *testing.T) {
	var active, peak int64
	items := make([]int, 50)

	Execute(2, items, func(idx int, item int) struct{} {
		n := atomic.AddInt64(&active, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&active, -1)
		return struct{}{}
	})

	if peak > 2 {
		t.Errorf("observed %d concurrent workers, want at most 2", peak)
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	results := Execute(4, nil, func(idx int, item int) int { return item })
	if len(results) != 0 {
		t.Errorf("Execute() returned %d results for empty input", len(results))
	}
}
