// File: api/frame.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The frame protocol: suspendable activation records, the directives they
// return to the worker trampoline, and the per-frame Header that carries
// all scheduler bookkeeping.

package api

import (
	"sync/atomic"

	"github.com/momentics/forkjoin/core/concurrency"
)

// NoWorker marks a frame that has never been stolen.
const NoWorker = -1

// Op selects what the trampoline does after a resume step.
type Op uint8

const (
	// OpReturn signals the frame finished terminally. An attached error
	// is recorded on the frame's Header for the parent to observe.
	OpReturn Op = iota

	// OpCall descends inline into Directive.Child on the current worker.
	// No deque traffic, no counter traffic: the child's terminal return
	// transfers control straight back to the caller.
	OpCall

	// OpJoin arrives at a join point. If all forked children have already
	// completed the frame continues on the same worker without suspending;
	// otherwise it parks and the last child to complete resumes it.
	OpJoin
)

// Directive is the value a resume step hands back to the trampoline.
// Build one with Return, Fail, Call or Join rather than by hand.
type Directive struct {
	Op    Op
	Child Frame // OpCall target
	Err   error // OpReturn failure tag
}

// Return reports terminal completion.
func Return() Directive { return Directive{Op: OpReturn} }

// Fail reports terminal completion with a tagged failure. The error is
// recorded on the frame and observable by the parent after its join; it
// does not poison the scheduler.
func Fail(err error) Directive { return Directive{Op: OpReturn, Err: err} }

// Call requests inline execution of child on the current worker.
// The caller must advance its saved state before returning this directive.
func Call(child Frame) Directive { return Directive{Op: OpCall, Child: child} }

// Join awaits all forked children of the current frame.
// The caller must advance its saved state before returning this directive.
func Join() Directive { return Directive{Op: OpJoin} }

// Frame is one suspendable activation record. User code realises a frame
// as a struct embedding Header, with spilled locals as fields and Resume
// as an explicit state machine over a saved program-counter discriminant.
//
// Resume runs exactly one step: from construction or a suspension point
// to the next directive. A frame must never be resumed concurrently with
// itself; the scheduler guarantees it never does so as long as directives
// are only returned after the saved state has been advanced.
type Frame interface {
	// Resume executes the next step of the frame on the given worker.
	Resume(ctx Context) Directive

	// Header exposes the scheduler bookkeeping block. Embedding a Header
	// value in the frame struct satisfies this automatically.
	Header() *Header
}

// Context is the worker-side surface available to a frame while it runs.
type Context interface {
	// WorkerID returns the index of the worker resuming this frame.
	WorkerID() int

	// Fork enqueues child for parallel execution on this worker's deque
	// and returns immediately; the parent continues inline. The child
	// becomes joinable at the parent's next OpJoin.
	Fork(child Frame)
}

// Header is the scheduler bookkeeping embedded in every frame.
//
// The outstanding-child counter uses a join-token scheme: it is armed to 1
// when the frame is prepared, Fork adds 1 per child, the join point and
// each terminal forked child subtract 1. Whoever observes zero owns the
// frame's resumption and re-arms the token, so at most one resumption
// happens per join and the zeroing thread is the resuming thread.
type Header struct {
	pending atomic.Int64
	stealer atomic.Int32
	parent  Frame
	err     error
	forked  bool
	root    bool

	// Inbox is the intrusive node linking this frame into a worker's
	// external submission stack. Data is bound to the frame itself by
	// Prepare, so submission never allocates.
	Inbox concurrency.Node[Frame]
}

// Header satisfies the Frame interface's accessor for embedders.
func (h *Header) Header() *Header { return h }

// Prepare resets the bookkeeping for a fresh run of the frame.
// Scheduler use; called on every fork, call and root submission.
func (h *Header) Prepare(self, parent Frame, forked bool) {
	h.pending.Store(1)
	h.stealer.Store(NoWorker)
	h.parent = parent
	h.err = nil
	h.forked = forked
	h.root = false
	h.Inbox.Data = self
}

// PrepareRoot resets the bookkeeping for a root submission.
func (h *Header) PrepareRoot(self Frame) {
	h.Prepare(self, nil, false)
	h.root = true
}

// AddChild accounts for one more outstanding forked child.
func (h *Header) AddChild() { h.pending.Add(1) }

// Arrive subtracts one token and reports whether the caller zeroed the
// counter and therefore owns the frame's resumption.
func (h *Header) Arrive() bool { return h.pending.Add(-1) == 0 }

// Rearm resets the join token for the next join point. Only the thread
// that zeroed the counter may call this.
func (h *Header) Rearm() { h.pending.Store(1) }

// Pending returns the current counter value. Snapshot only.
func (h *Header) Pending() int64 { return h.pending.Load() }

// Parent returns the frame this one reports to, nil for roots and
// externally submitted frames.
func (h *Header) Parent() Frame { return h.parent }

// Forked reports whether the frame was enqueued by Fork (as opposed to
// executed inline by Call or submitted as a root).
func (h *Header) Forked() bool { return h.forked }

// IsRoot reports whether the frame was submitted via SyncWait.
func (h *Header) IsRoot() bool { return h.root }

// SetStealer records the worker that stole this frame.
func (h *Header) SetStealer(worker int) { h.stealer.Store(int32(worker)) }

// Stealer returns the worker id of the last thief, or NoWorker.
func (h *Header) Stealer() int { return int(h.stealer.Load()) }

// SetErr tags the frame with a terminal failure. Scheduler use.
func (h *Header) SetErr(err error) { h.err = err }

// Err returns the frame's terminal failure, if any. Safe to read after
// the frame has been joined: the counter's release/acquire pair orders
// the write before the parent's observation.
func (h *Header) Err() error { return h.err }
