//go:build !linux
// +build !linux

// File: internal/concurrency/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without sched_setaffinity. The OS thread is
// still locked so the worker keeps a stable thread identity.

package concurrency

import "runtime"

// PinThread locks the calling goroutine to its OS thread; CPU binding is
// not available here.
func PinThread(cpu int) error {
	runtime.LockOSThread()
	return ErrAffinityNotSupported
}
