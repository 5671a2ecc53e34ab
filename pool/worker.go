// File: pool/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker owns one deque of runnable frames, one inbox of external
// submissions and one PRNG stream for victim selection. The dispatch
// trampoline interprets the directives frames return: it descends into
// called children, parks frames at joins, routes terminal returns to
// parents and falls back to the local deque between chains.

package pool

import (
	"fmt"
	"runtime"

	"github.com/momentics/forkjoin/api"
	core "github.com/momentics/forkjoin/core/concurrency"
)

// stealAttempts is the number of consecutive failed steals a worker
// tolerates before it re-checks its stop condition and yields.
const stealAttempts = 1024

// Worker is the per-worker execution context. Worker 0 belongs to the
// thread blocked in SyncWait; the rest run their own goroutines.
type Worker struct {
	id    int
	pool  *Pool
	deque *core.Deque[api.Frame]
	inbox *core.MPSCStack[api.Frame]
	rng   *core.Xoshiro

	// cur is the frame being resumed; owned by the dispatch loop.
	cur api.Frame
}

// WorkerID returns the index of this worker within its pool.
func (w *Worker) WorkerID() int { return w.id }

// Fork prepares child as a forked child of the running frame, pushes it
// onto this worker's deque and returns; the parent continues inline.
func (w *Worker) Fork(child api.Frame) {
	child.Header().Prepare(child, w.cur, true)
	w.cur.Header().AddChild()
	w.deque.Push(child)
}

// loop is the body of a worker goroutine: park on the pool event, wake
// when a root is in flight or a submission arrives, steal until the root
// completes, park again.
func (w *Worker) loop() {
	p := w.pool
	defer p.wg.Done()

	if p.pin {
		// Pinning failure is not fatal; the worker just stays unpinned.
		_ = pinThread(w.id)
	}

	for {
		seen := p.event.Load()
		if p.stop.Load() {
			return
		}
		if w.drainInbox() {
			w.runLocal()
		}
		if seen&eventFlag != 0 {
			w.stealUntil(func() bool {
				return !p.event.IsSet() || p.stop.Load()
			})
			continue
		}
		if hk := p.hooks.OnPark; hk != nil {
			hk(w.id)
		}
		p.event.Wait(seen)
		if hk := p.hooks.OnWake; hk != nil {
			hk(w.id)
		}
	}
}

// stealUntil steals from random victims until done reports true. Rounds
// of up to stealAttempts consecutive failures are separated by a yield;
// the worker never sleeps here, the wake path is the pool event.
func (w *Worker) stealUntil(done func() bool) {
	peers := w.pool.workers
	n := uint64(len(peers))

	for !done() {
		if w.drainInbox() {
			w.runLocal()
		}
		if n == 1 {
			runtime.Gosched()
			continue
		}
		attempts := 0
		for attempts < stealAttempts {
			// Uniform victim over the other n-1 workers.
			v := int(w.rng.Uintn(n - 1))
			if v >= w.id {
				v++
			}
			if f, ok := peers[v].deque.Steal(); ok {
				attempts = 0
				w.resumeStolen(f, v)
			} else {
				attempts++
			}
		}
		runtime.Gosched()
	}
}

// resumeStolen runs a frame taken from victim's deque on this worker.
func (w *Worker) resumeStolen(f api.Frame, victim int) {
	f.Header().SetStealer(w.id)
	if hk := w.pool.hooks.OnSteal; hk != nil {
		hk(w.id, victim)
	}
	w.dispatch(f)
	if !w.deque.Empty() {
		panic("pool: worker deque not empty after dispatching stolen frame")
	}
}

// drainInbox moves externally submitted frames onto the local deque.
// Reports whether anything arrived.
func (w *Worker) drainInbox() bool {
	n := w.inbox.PopAll()
	if n == nil {
		return false
	}
	for ; n != nil; n = n.Next() {
		w.deque.Push(n.Data)
	}
	return true
}

// runLocal drains and dispatches the local deque.
func (w *Worker) runLocal() {
	for {
		f, ok := w.deque.Pop()
		if !ok {
			return
		}
		w.dispatch(f)
	}
}

// dispatch drives f and everything it spawns until no local work remains.
// On return the worker's deque is empty from the owner's point of view:
// every frame this chain forked has been popped here or stolen elsewhere.
func (w *Worker) dispatch(f api.Frame) {
	cur := f
	for cur != nil {
		w.cur = cur
		d := w.step(cur)
		switch d.Op {
		case api.OpCall:
			// Inline descent; terminal return transfers straight back.
			d.Child.Header().Prepare(d.Child, cur, false)
			cur = d.Child

		case api.OpJoin:
			h := cur.Header()
			if h.Arrive() {
				// All children done; keep running on this worker.
				h.Rearm()
				continue
			}
			// Suspended: the last child resumes it. Take newest local
			// work in the meantime.
			cur = w.popLocal()

		case api.OpReturn:
			cur = w.complete(cur, d.Err)

		default:
			panic(fmt.Sprintf("pool: invalid directive op %d", d.Op))
		}
	}
	w.cur = nil
}

// step resumes f once, converting a panic into a tagged failure so a
// crashing frame cannot poison the scheduler.
func (w *Worker) step(f api.Frame) (d api.Directive) {
	defer func() {
		if r := recover(); r != nil {
			d = api.Fail(fmt.Errorf("frame panic: %v", r))
		}
	}()
	return f.Resume(w)
}

// complete handles a terminal return of f and picks the next frame.
func (w *Worker) complete(f api.Frame, err error) api.Frame {
	h := f.Header()
	if err != nil {
		h.SetErr(err)
	}

	parent := h.Parent()
	if parent == nil {
		if h.IsRoot() {
			w.pool.finishRoot()
		}
		return w.popLocal()
	}

	if h.Forked() {
		ph := parent.Header()
		if ph.Arrive() {
			// We zeroed the counter at the parent's join point, so this
			// worker owns the resumption.
			ph.Rearm()
			return parent
		}
		return w.popLocal()
	}

	// Called child: direct continuation transfer, no counter traffic.
	return parent
}

func (w *Worker) popLocal() api.Frame {
	if f, ok := w.deque.Pop(); ok {
		return f
	}
	return nil
}
