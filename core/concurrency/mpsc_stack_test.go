package concurrency

import (
	"runtime"
	"sync"
	"testing"
)

func TestMPSCStackLIFO(t *testing.T) {
	var s MPSCStack[int]
	nodes := make([]Node[int], 3)
	for i := range nodes {
		nodes[i].Data = i + 1
		s.Push(&nodes[i])
	}

	var got []int
	for n := s.PopAll(); n != nil; n = n.Next() {
		got = append(got, n.Data)
	}
	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("popped %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chain[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if !s.Empty() {
		t.Fatal("stack not empty after PopAll")
	}
}

func TestMPSCStackManyProducers(t *testing.T) {
	const (
		producers = 8
		each      = 10000
	)

	var s MPSCStack[int]
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			nodes := make([]Node[int], each)
			for i := range nodes {
				nodes[i].Data = p*each + i
				s.Push(&nodes[i])
			}
		}(p)
	}

	// Consumer drains concurrently with the producers.
	seen := make([]bool, producers*each)
	count := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for count < producers*each {
			n := s.PopAll()
			if n == nil {
				runtime.Gosched()
				continue
			}
			for ; n != nil; n = n.Next() {
				if seen[n.Data] {
					t.Errorf("value %d delivered twice", n.Data)
					return
				}
				seen[n.Data] = true
				count++
			}
		}
	}()

	wg.Wait()
	<-done

	if count != producers*each {
		t.Fatalf("delivered %d values, want %d", count, producers*each)
	}
}
