// Package parallel fans independent work items out over a bounded number of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution.
type Config struct {
	Workers int // Maximum goroutines; 1 or less runs sequentially.
}

// DefaultConfig uses one worker per usable CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0)}
}

// Sequential returns a configuration that runs every item on the caller.
func Sequential() Config {
	return Config{Workers: 1}
}

// Each calls f(i) for every i in [0, n). Items are handed out one at a time,
// so uneven item costs balance across workers. f must be safe to call
// concurrently for distinct i.
func Each(n int, cfg Config, f func(i int)) {
	workers := min(cfg.Workers, n)
	if workers <= 1 {
		for i := range n {
			f(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				f(i)
			}
		}()
	}
	wg.Wait()
}

// Map calls f for every i in [0, n) and collects the results in order.
func Map[T any](n int, cfg Config, f func(i int) T) []T {
	out := make([]T, n)
	Each(n, cfg, func(i int) {
		out[i] = f(i)
	})
	return out
}
