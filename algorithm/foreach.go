// File: algorithm/foreach.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Parallel for-each and reduce. Each frame halves its range, forks the
// left half, descends into the right half inline and joins.

package algorithm

import (
	"github.com/momentics/forkjoin/api"
	"github.com/momentics/forkjoin/pool"
)

// ForEach applies fn to a pointer to every element of items on the pool,
// splitting ranges longer than grain elements. fn copies must be safe to
// run concurrently on disjoint elements.
func ForEach[T any](p *pool.Pool, items []T, grain int, fn func(*T)) error {
	if len(items) == 0 {
		return nil
	}
	if grain < 1 {
		grain = 1
	}
	return p.SyncWait(&forEachFrame[T]{items: items, grain: grain, fn: fn})
}

type forEachFrame[T any] struct {
	api.Header
	items []T
	grain int
	fn    func(*T)
	pc    int8
}

func (f *forEachFrame[T]) Resume(ctx api.Context) api.Directive {
	switch f.pc {
	case 0:
		if len(f.items) <= f.grain {
			for i := range f.items {
				f.fn(&f.items[i])
			}
			return api.Return()
		}
		mid := len(f.items) / 2
		left := &forEachFrame[T]{items: f.items[:mid], grain: f.grain, fn: f.fn}
		right := &forEachFrame[T]{items: f.items[mid:], grain: f.grain, fn: f.fn}
		ctx.Fork(left)
		f.pc = 1
		return api.Call(right)
	case 1:
		f.pc = 2
		return api.Join()
	default:
		return api.Return()
	}
}

// Reduce folds items with merge on the pool, splitting ranges longer
// than grain elements. merge must be associative; an empty slice reduces
// to the zero value of T.
func Reduce[T any](p *pool.Pool, items []T, grain int, merge func(T, T) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, nil
	}
	if grain < 1 {
		grain = 1
	}
	root := &reduceFrame[T]{items: items, grain: grain, merge: merge}
	if err := p.SyncWait(root); err != nil {
		var zero T
		return zero, err
	}
	return root.out, nil
}

type reduceFrame[T any] struct {
	api.Header
	items []T
	grain int
	merge func(T, T) T
	left  *reduceFrame[T]
	right *reduceFrame[T]
	out   T
	pc    int8
}

func (f *reduceFrame[T]) Resume(ctx api.Context) api.Directive {
	switch f.pc {
	case 0:
		if len(f.items) <= f.grain {
			acc := f.items[0]
			for _, v := range f.items[1:] {
				acc = f.merge(acc, v)
			}
			f.out = acc
			return api.Return()
		}
		mid := len(f.items) / 2
		f.left = &reduceFrame[T]{items: f.items[:mid], grain: f.grain, merge: f.merge}
		f.right = &reduceFrame[T]{items: f.items[mid:], grain: f.grain, merge: f.merge}
		ctx.Fork(f.left)
		f.pc = 1
		return api.Call(f.right)
	case 1:
		f.pc = 2
		return api.Join()
	default:
		f.out = f.merge(f.left.out, f.right.out)
		return api.Return()
	}
}
