// Package cluster models a fixed group of cooperating cores that run the same
// function over disjoint data (SPMD) and synchronize through a shared barrier.
//
// A Team is created once and reused for every invocation:
//
//	team, err := cluster.New(8)
//	if err != nil { ... }
//	defer team.Close()
//
//	team.Run(func(c cluster.Core) {
//	    work(c.ID(), c.Count())
//	    c.Barrier()
//	    if c.ID() == 0 {
//	        finish()
//	    }
//	    c.Barrier()
//	})
//
// Cores are backed by a persistent worker pool with exactly one worker per
// core, so no goroutine is created per call.
package cluster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// MaxCores bounds the team size.
const MaxCores = 1024

// ErrInvalidSize is returned by New for a team size outside [1, MaxCores].
var ErrInvalidSize = errors.New("cluster: team size out of range")

// Team is a fixed pool of cores. Run calls are serialized: the team executes
// one SPMD program at a time.
type Team struct {
	mu      sync.Mutex
	size    int
	pool    *workerpool.Pool
	barrier *Barrier
	closed  bool
}

// Core is the per-core handle passed to the function given to Run.
type Core struct {
	id   int
	team *Team
}

// ID returns the core index in [0, Count()).
func (c Core) ID() int { return c.id }

// Count returns the number of cores in the team.
func (c Core) Count() int { return c.team.size }

// Barrier blocks until every core of the team reached the same barrier.
func (c Core) Barrier() { c.team.barrier.Wait() }

// New creates a team of size cores.
func New(size int) (*Team, error) {
	if size < 1 || size > MaxCores {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Team{
		size:    size,
		pool:    workerpool.New(size),
		barrier: NewBarrier(size),
	}, nil
}

// Size returns the number of cores.
func (t *Team) Size() int {
	return t.size
}

// Run executes fn once per core, concurrently, and returns after every core
// returned. fn may call Core.Barrier; every core must reach the same sequence
// of barriers or Run deadlocks.
//
// Run panics if the team has been closed.
func (t *Team) Run(fn func(c Core)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		panic("cluster: Run on closed team")
	}

	if t.size == 1 {
		fn(Core{id: 0, team: t})
		return
	}

	// With one worker per core ParallelFor hands every worker a single
	// index, so all cores are live at the same time and barriers resolve.
	t.pool.ParallelFor(t.size, func(start, end int) {
		for id := start; id < end; id++ {
			fn(Core{id: id, team: t})
		}
	})
}

// Close stops the workers. It is safe to call more than once.
func (t *Team) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.pool.Close()
}
