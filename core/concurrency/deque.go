// File: core/concurrency/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chase-Lev work-stealing deque, after "Dynamic Circular Work-Stealing
// Deque" and "Correct and Efficient Work-Stealing for Weak Memory Models".
// The owner pushes and pops at the bottom (LIFO); any other thread steals
// from the top (FIFO). Lock-free, grows on owner overflow.
//
// Go's sync/atomic operations are sequentially consistent, which subsumes
// every relaxed/acquire/release placement and both seq-cst fences of the
// published protocol. What this file preserves literally is the operation
// order: pop publishes the bottom decrement before loading top, steal
// loads top before bottom and reads the slot before the claiming CAS.

package concurrency

import (
	"sync/atomic"

	"github.com/eapache/queue"
)

// cacheLinePad separates contended words onto their own cache lines.
type cacheLinePad struct{ _ [64]byte }

// Deque is a single-producer multiple-consumer work-stealing deque.
//
// Only the owning worker may call Push and Pop. Steal may be called from
// any thread. A stale slot read during a lost steal race never escapes:
// the value is surfaced only when the CAS on top succeeds, so T must be
// safe to read racily and discard (plain values and pointers are; the
// scheduler stores frame handles).
type Deque[T any] struct {
	_      cacheLinePad
	top    atomic.Int64
	_      cacheLinePad
	bottom atomic.Int64
	_      cacheLinePad
	buffer atomic.Pointer[ringBuf[T]]

	// retired pins superseded buffers for the lifetime of the deque so a
	// thief paused inside steal can never observe a reclaimed buffer.
	// Owner-only.
	retired *queue.Queue
}

// NewDeque creates a deque with the given initial capacity, which must be
// a power of two.
func NewDeque[T any](capacity int64) *Deque[T] {
	d := &Deque[T]{retired: queue.New()}
	d.buffer.Store(newRingBuf[T](capacity))
	return d
}

// Push appends v at the bottom. Owner only. Never fails; growing the
// buffer aborts on OOM like any Go allocation, which keeps Push
// infallible by contract.
func (d *Deque[T]) Push(v T) {
	b := d.bottom.Load()
	t := d.top.Load()
	buf := d.buffer.Load()

	if b-t+1 > buf.capacity() {
		next := buf.resize(b, t)
		d.retired.Add(buf)
		d.buffer.Store(next)
		buf = next
	}

	// No thief can observe this slot until the bottom store below.
	buf.store(b, v)
	d.bottom.Store(b + 1)
}

// Pop removes and returns the newest value. Owner only.
func (d *Deque[T]) Pop() (v T, ok bool) {
	b := d.bottom.Load() - 1
	buf := d.buffer.Load()

	// Revoke the slot from future thieves before inspecting top.
	d.bottom.Store(b)

	t := d.top.Load()

	switch {
	case t < b:
		// Non-empty and uncontested.
		return buf.load(b), true

	case t == b:
		// Last element; a thief that loaded bottom before our store may
		// race us for it. The CAS on top decides the winner.
		won := d.top.CompareAndSwap(t, t+1)
		d.bottom.Store(b + 1)
		if won {
			return buf.load(b), true
		}
		return v, false

	default:
		// Already empty.
		d.bottom.Store(b + 1)
		return v, false
	}
}

// Steal removes and returns the oldest value. Any thread. Returns ok=false
// on an empty deque and on a lost race; neither mutates observable state.
func (d *Deque[T]) Steal() (v T, ok bool) {
	t := d.top.Load()
	b := d.bottom.Load()

	if t >= b {
		return v, false
	}

	// Read the slot before claiming it. The owner may overwrite the cell
	// right after our read; the value is only surfaced if the CAS wins,
	// which proves the read was not raced.
	x := d.buffer.Load().load(t)

	if !d.top.CompareAndSwap(t, t+1) {
		return v, false
	}
	return x, true
}

// Size returns a snapshot of the number of queued values.
func (d *Deque[T]) Size() int64 {
	b := d.bottom.Load()
	t := d.top.Load()
	if b < t {
		return 0
	}
	return b - t
}

// Empty reports whether the deque appears empty.
func (d *Deque[T]) Empty() bool { return d.Size() == 0 }

// Capacity returns the capacity of the current buffer.
func (d *Deque[T]) Capacity() int64 { return d.buffer.Load().capacity() }

// Retired returns the number of superseded buffers held by the deque.
func (d *Deque[T]) Retired() int { return d.retired.Length() }
