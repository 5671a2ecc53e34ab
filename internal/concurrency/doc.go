// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-specific primitives behind the scheduler: the futex-backed
// wake/sleep event that parks idle workers and the optional CPU affinity
// pinning of worker threads. Linux gets native implementations via
// golang.org/x/sys; other platforms fall back to portable equivalents,
// selected by build tags.
package concurrency
