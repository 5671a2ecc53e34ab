// File: core/concurrency/mpsc_stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Intrusive multi-producer single-consumer stack. Producers hand nodes to
// a consumer thread without allocating: the node lives inside the object
// being handed over.

package concurrency

import "sync/atomic"

// Node is the link embedded in objects pushed onto an MPSCStack.
type Node[T any] struct {
	next *Node[T]

	// Data is the payload recovered by the consumer; Go has no
	// container_of, so the node carries the reference explicitly.
	Data T
}

// Next returns the following node of a popped chain.
func (n *Node[T]) Next() *Node[T] { return n.next }

// MPSCStack is a lock-free LIFO stack. Any thread may Push; only the
// owning consumer may PopAll.
type MPSCStack[T any] struct {
	head atomic.Pointer[Node[T]]
}

// Push links n onto the stack. Safe from any number of threads.
func (s *MPSCStack[T]) Push(n *Node[T]) {
	for {
		head := s.head.Load()
		n.next = head
		if s.head.CompareAndSwap(head, n) {
			return
		}
	}
}

// PopAll detaches the whole stack and returns the chain head, nil if
// empty. The chain walks in LIFO order and is private to the caller.
// Consumer only.
func (s *MPSCStack[T]) PopAll() *Node[T] {
	return s.head.Swap(nil)
}

// Empty reports whether the stack appears empty.
func (s *MPSCStack[T]) Empty() bool { return s.head.Load() == nil }
