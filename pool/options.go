// File: pool/options.go
// Package pool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"runtime"
	"time"

	"github.com/momentics/forkjoin/api"
)

type config struct {
	workers       int
	dequeCapacity int64
	seed          uint64
	pinWorkers    bool
	hooks         api.Hooks
}

func defaultConfig() config {
	return config{
		workers:       runtime.NumCPU(),
		dequeCapacity: 256,
		seed:          uint64(time.Now().UnixNano()),
	}
}

func (c *config) validate() error {
	if c.workers < 1 {
		return api.ErrInvalidWorkerCount
	}
	if c.dequeCapacity <= 0 || c.dequeCapacity&(c.dequeCapacity-1) != 0 {
		return api.ErrInvalidDequeCapacity
	}
	return nil
}

// Option customizes pool construction.
type Option func(*config)

// WithWorkers sets the worker count. Must be at least 1; defaults to the
// hardware concurrency.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithDequeCapacity sets the initial per-worker deque capacity, a power
// of two. Deques grow on overflow regardless.
func WithDequeCapacity(n int) Option {
	return func(c *config) { c.dequeCapacity = int64(n) }
}

// WithSeed fixes the seed of the victim-selection PRNG streams, making
// steal order reproducible for debugging.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithAffinity pins each worker goroutine's OS thread to a CPU on
// platforms that support it.
func WithAffinity(pin bool) Option {
	return func(c *config) { c.pinWorkers = pin }
}

// WithHooks attaches instrumentation callbacks.
func WithHooks(h api.Hooks) Option {
	return func(c *config) { c.hooks = h }
}
