// File: core/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Portable lock-free primitives of the forkjoin scheduler: the Chase-Lev
// work-stealing deque and its ring buffer, the intrusive MPSC submission
// stack, and the per-worker xoshiro256** generator.
//
// All primitives are allocation-free on their hot paths and are laid out
// to keep contended words on separate cache lines.
package concurrency
