// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values used across the library.

package api

import "errors"

var (
	// ErrPoolClosed indicates the pool has been shut down.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrRootInFlight indicates a root task is already running on the
	// pool. SyncWait is single-submitter and rejects re-entrant calls.
	ErrRootInFlight = errors.New("a root task is already in flight")

	// ErrInvalidWorkerCount indicates an invalid worker count configuration.
	ErrInvalidWorkerCount = errors.New("invalid worker count")

	// ErrInvalidDequeCapacity indicates a deque capacity that is not a
	// positive power of two.
	ErrInvalidDequeCapacity = errors.New("deque capacity must be a power of two")

	// ErrNilFrame indicates a nil frame was submitted.
	ErrNilFrame = errors.New("nil frame")
)
