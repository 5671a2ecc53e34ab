package algorithm

import (
	"sync/atomic"
	"testing"

	"github.com/momentics/forkjoin/pool"
)

func newPool(t *testing.T, workers int) *pool.Pool {
	t.Helper()
	p, err := pool.New(pool.WithWorkers(workers))
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestForEachTouchesEveryElement(t *testing.T) {
	p := newPool(t, 4)

	items := make([]int, 10000)
	for i := range items {
		items[i] = i
	}

	if err := ForEach(p, items, 64, func(v *int) { *v++ }); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	for i, v := range items {
		if v != i+1 {
			t.Fatalf("items[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestForEachGrainExtremes(t *testing.T) {
	p := newPool(t, 2)

	for _, grain := range []int{0, 1, 3, 100000} {
		var calls atomic.Int64
		items := make([]int, 1000)
		if err := ForEach(p, items, grain, func(v *int) { calls.Add(1) }); err != nil {
			t.Fatalf("grain %d: ForEach: %v", grain, err)
		}
		if calls.Load() != 1000 {
			t.Fatalf("grain %d: %d calls, want 1000", grain, calls.Load())
		}
	}
}

func TestForEachEmpty(t *testing.T) {
	p := newPool(t, 2)
	if err := ForEach(p, []int(nil), 8, func(v *int) { t.Error("called on empty slice") }); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
}

func TestReduceSum(t *testing.T) {
	p := newPool(t, 4)

	items := make([]int64, 10000)
	var want int64
	for i := range items {
		items[i] = int64(i + 1)
		want += int64(i + 1)
	}

	for _, grain := range []int{1, 7, 1024} {
		got, err := Reduce(p, items, grain, func(a, b int64) int64 { return a + b })
		if err != nil {
			t.Fatalf("grain %d: Reduce: %v", grain, err)
		}
		if got != want {
			t.Fatalf("grain %d: sum = %d, want %d", grain, got, want)
		}
	}
}

func TestReduceSmall(t *testing.T) {
	p := newPool(t, 2)

	got, err := Reduce(p, []int(nil), 8, func(a, b int) int { return a + b })
	if err != nil || got != 0 {
		t.Fatalf("empty reduce = (%d, %v), want (0, nil)", got, err)
	}

	got, err = Reduce(p, []int{42}, 8, func(a, b int) int { return a + b })
	if err != nil || got != 42 {
		t.Fatalf("single reduce = (%d, %v), want (42, nil)", got, err)
	}
}

func TestReduceMax(t *testing.T) {
	p := newPool(t, 4)

	items := make([]int, 5000)
	for i := range items {
		items[i] = (i * 2654435761) % 100000
	}
	want := items[0]
	for _, v := range items {
		if v > want {
			want = v
		}
	}

	got, err := Reduce(p, items, 16, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	if got != want {
		t.Fatalf("max = %d, want %d", got, want)
	}
}
