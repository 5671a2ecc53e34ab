// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: Apache-2.0

package pool

import "sync"

// FramePool recycles user activation records between runs. Frames are
// re-prepared by the scheduler on every fork, call and submission, so a
// recycled frame only needs its user fields reset by the caller.
type FramePool[T any] struct {
	inner sync.Pool
}

// NewFramePool creates a pool backed by the given allocator.
func NewFramePool[T any](alloc func() *T) *FramePool[T] {
	return &FramePool[T]{
		inner: sync.Pool{New: func() any { return alloc() }},
	}
}

// Get returns a frame from the pool, allocating if empty.
func (p *FramePool[T]) Get() *T { return p.inner.Get().(*T) }

// Put returns a frame for reuse. The frame must have completed: a frame
// still reachable by the scheduler must never be recycled.
func (p *FramePool[T]) Put(f *T) { p.inner.Put(f) }
