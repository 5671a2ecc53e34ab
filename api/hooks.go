// File: api/hooks.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional instrumentation hooks. The scheduler itself never logs;
// observability is delegated entirely to these callbacks.

package api

// Hooks receives scheduler lifecycle events. Any field may be nil.
// Callbacks run on hot paths of the calling worker; they must be cheap
// and must not block.
type Hooks struct {
	// OnWake fires when a parked worker wakes up.
	OnWake func(worker int)

	// OnPark fires when a worker runs out of work and parks.
	OnPark func(worker int)

	// OnSteal fires after a successful steal, before the stolen frame
	// is resumed on the thief.
	OnSteal func(worker, victim int)

	// OnRootStart fires on the submitting thread before the root frame
	// is first resumed.
	OnRootStart func()

	// OnRootDone fires on the worker that ran the root frame's terminal
	// step, before the in-flight latch clears.
	OnRootDone func()
}
