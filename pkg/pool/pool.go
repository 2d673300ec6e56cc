package pool

import (
	"runtime"
	"sync/atomic"
)

// task asks the workers to evaluate f until enough non-nil results exist.
type task struct {
	f         func() interface{}
	results   chan<- interface{}
	remaining *int64
}

// Pool is a fixed set of workers used to parallelize candidate searches,
// such as hunting for random primes.
//
// Functions taking a *Pool accept a nil receiver and then do the
// equivalent work on the calling goroutine.
type Pool struct {
	tasks   chan task
	workers int
}

// NewPool starts a pool with the given number of workers.
// If count <= 0, the number of available CPUs is used.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		tasks:   make(chan task),
		workers: count,
	}
	for i := 0; i < count; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for t := range p.tasks {
		for atomic.LoadInt64(t.remaining) > 0 {
			v := t.f()
			if v == nil {
				continue
			}
			if atomic.AddInt64(t.remaining, -1) < 0 {
				// another worker already produced the last result
				break
			}
			t.results <- v
		}
	}
}

// TearDown stops the workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	close(p.tasks)
}

// Search evaluates f until count non-nil results have been found, and
// returns them. f is expected to try a single candidate, returning nil
// when the candidate is unsuitable.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	if p == nil {
		out := make([]interface{}, count)
		for i := range out {
			for out[i] = f(); out[i] == nil; out[i] = f() {
			}
		}
		return out
	}

	remaining := int64(count)
	results := make(chan interface{}, count)
	t := task{f: f, results: results, remaining: &remaining}
	for i := 0; i < p.workers; i++ {
		p.tasks <- t
	}

	out := make([]interface{}, 0, count)
	for len(out) < count {
		out = append(out, <-results)
	}
	return out
}
