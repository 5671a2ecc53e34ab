// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool implements the fork/join worker pool: a fixed set of
// workers, each owning a Chase-Lev deque of runnable frames, stealing
// from random victims when their own deque runs dry.
//
// A computation is a tree of api.Frame state machines. Fork pushes a
// child onto the forking worker's deque and continues the parent inline;
// Call descends into a child on the same worker; Join suspends the parent
// until its outstanding children complete, and the worker that zeroes the
// child counter is the worker that resumes the parent. SyncWait submits a
// root frame from outside the pool and blocks, stealing cooperatively,
// until the whole tree has finished.
package pool
