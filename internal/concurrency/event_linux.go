//go:build linux
// +build linux

// File: internal/concurrency/event_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Futex-backed event. Workers park in the kernel on the event word; every
// state change is published with a store on the same word followed by a
// FUTEX_WAKE, so the wait-if-still-equal protocol of futexes closes the
// lost-wakeup window.

package concurrency

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux futex(2) operation constants. Not exposed by golang.org/x/sys/unix;
// values are fixed by the kernel ABI (see linux/futex.h).
const (
	futexWait        = 0
	futexWake        = 1
	futexPrivateFlag = 128
)

// Event is a one-word latch with futex wait/notify. See event.go for the
// word layout.
type Event struct {
	word uint32
}

// NewEvent returns a cleared event.
func NewEvent() *Event { return &Event{} }

// Load returns the current event word.
func (e *Event) Load() uint32 { return atomic.LoadUint32(&e.word) }

// IsSet reports whether the root-in-flight flag is up.
func (e *Event) IsSet() bool { return e.Load()&EventFlag != 0 }

// TrySet raises the flag and wakes all waiters; reports false without
// waking anyone if the flag was already up.
func (e *Event) TrySet() bool {
	for {
		w := atomic.LoadUint32(&e.word)
		if w&EventFlag != 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(&e.word, w, w|EventFlag) {
			e.wake()
			return true
		}
	}
}

// Set raises the flag unconditionally and wakes all waiters.
func (e *Event) Set() {
	for {
		w := atomic.LoadUint32(&e.word)
		if atomic.CompareAndSwapUint32(&e.word, w, w|EventFlag) {
			e.wake()
			return
		}
	}
}

// Clear lowers the flag. Waiters are not woken: a cleared flag is what
// sends workers back to their parking spot.
func (e *Event) Clear() {
	for {
		w := atomic.LoadUint32(&e.word)
		if atomic.CompareAndSwapUint32(&e.word, w, w&^EventFlag) {
			return
		}
	}
}

// Kick bumps the notification generation and wakes all waiters without
// touching the flag.
func (e *Event) Kick() {
	atomic.AddUint32(&e.word, eventKick)
	e.wake()
}

// Wait blocks while the event word still equals seen.
func (e *Event) Wait(seen uint32) {
	for atomic.LoadUint32(&e.word) == seen {
		_, _, _ = unix.Syscall6(
			unix.SYS_FUTEX,
			uintptr(unsafe.Pointer(&e.word)),
			uintptr(futexWait|futexPrivateFlag),
			uintptr(seen),
			0, 0, 0,
		)
	}
}

func (e *Event) wake() {
	_, _, _ = unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(&e.word)),
		uintptr(futexWake|futexPrivateFlag),
		uintptr(math.MaxInt32),
		0, 0, 0,
	)
}
