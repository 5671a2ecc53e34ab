// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The pool proper: construction, root submission, external submission
// and shutdown. Wake/sleep coordination runs over a single futex-backed
// event whose flag bit is the root-in-flight latch.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/forkjoin/api"
	core "github.com/momentics/forkjoin/core/concurrency"
	platform "github.com/momentics/forkjoin/internal/concurrency"
)

const eventFlag = platform.EventFlag

func pinThread(cpu int) error { return platform.PinThread(cpu) }

// Pool executes fork/join computations on a fixed set of workers.
//
// Worker 0 has no goroutine of its own: it is driven by the thread that
// calls SyncWait. Workers 1..n-1 park on the pool event between roots.
type Pool struct {
	workers []*Worker
	event   *platform.Event
	hooks   api.Hooks
	wg      sync.WaitGroup
	stop    atomic.Bool
	next    atomic.Uint64
	pin     bool
}

// New constructs a pool. With no options the worker count defaults to
// the hardware concurrency.
func New(opts ...Option) (*Pool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	p := &Pool{
		event: platform.NewEvent(),
		hooks: cfg.hooks,
		pin:   cfg.pinWorkers,
	}

	// One seed, long-jump-separated streams: victim selection stays
	// independent across workers with zero shared state.
	rng := core.NewXoshiro(cfg.seed)

	p.workers = make([]*Worker, cfg.workers)
	for i := range p.workers {
		stream := *rng
		p.workers[i] = &Worker{
			id:    i,
			pool:  p,
			deque: core.NewDeque[api.Frame](cfg.dequeCapacity),
			inbox: &core.MPSCStack[api.Frame]{},
			rng:   &stream,
		}
		rng.LongJump()
	}

	for i := 1; i < cfg.workers; i++ {
		p.wg.Add(1)
		go p.workers[i].loop()
	}
	return p, nil
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return len(p.workers) }

// SyncWait submits root and blocks until the whole task tree has
// completed, lending the calling thread to the pool as worker 0 for the
// duration. Returns the root frame's terminal failure, if any; results
// are read from the frame itself afterwards.
//
// SyncWait is single-submitter: concurrent or re-entrant calls on the
// same pool are rejected with api.ErrRootInFlight.
func (p *Pool) SyncWait(root api.Frame) error {
	if root == nil {
		return api.ErrNilFrame
	}
	if p.stop.Load() {
		return api.ErrPoolClosed
	}
	if !p.event.TrySet() {
		return api.ErrRootInFlight
	}

	root.Header().PrepareRoot(root)
	if hk := p.hooks.OnRootStart; hk != nil {
		hk()
	}

	w := p.workers[0]
	w.dispatch(root)
	w.stealUntil(func() bool {
		return !p.event.IsSet() || p.stop.Load()
	})

	return root.Header().Err()
}

// finishRoot runs on whichever worker executed the root frame's terminal
// step. Clearing the flag releases the SyncWait loop and sends the other
// workers back to their parking spot.
func (p *Pool) finishRoot() {
	if hk := p.hooks.OnRootDone; hk != nil {
		hk()
	}
	p.event.Clear()
}

// SubmitExternal hands a detached frame to a worker from outside the
// pool. The frame is executed with no parent; completion is observed by
// whatever signalling the frame itself performs, failures via its
// Header().Err(). Frames queued while no root is in flight run as soon
// as a woken worker drains its inbox. On a one-worker pool the frame goes
// to worker 0, which has no goroutine, and runs only during the next
// SyncWait.
func (p *Pool) SubmitExternal(f api.Frame) error {
	if f == nil {
		return api.ErrNilFrame
	}
	if p.stop.Load() {
		return api.ErrPoolClosed
	}

	h := f.Header()
	h.Prepare(f, nil, false)

	// Round-robin over workers 1..n-1; worker 0 only drains its inbox
	// while a SyncWait is active.
	idx := 0
	if n := len(p.workers); n > 1 {
		idx = 1 + int(p.next.Add(1)%uint64(n-1))
	}
	p.workers[idx].inbox.Push(&h.Inbox)
	p.event.Kick()
	return nil
}

// Close stops and joins all workers. In-flight work is allowed to finish
// naturally; submitting concurrently with Close is undefined. Close is
// idempotent.
func (p *Pool) Close() error {
	if !p.stop.CompareAndSwap(false, true) {
		return nil
	}
	p.event.Set()
	p.wg.Wait()
	return nil
}
