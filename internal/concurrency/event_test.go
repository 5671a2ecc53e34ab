package concurrency

import (
	"testing"
	"time"
)

func TestEventFlagTransitions(t *testing.T) {
	e := NewEvent()
	if e.IsSet() {
		t.Fatal("new event is set")
	}
	if !e.TrySet() {
		t.Fatal("TrySet on clear event failed")
	}
	if !e.IsSet() {
		t.Fatal("flag not set after TrySet")
	}
	if e.TrySet() {
		t.Fatal("TrySet on set event succeeded")
	}
	e.Clear()
	if e.IsSet() {
		t.Fatal("flag still set after Clear")
	}
	e.Set()
	if !e.IsSet() {
		t.Fatal("flag not set after Set")
	}
}

func TestEventSetWakesWaiter(t *testing.T) {
	e := NewEvent()
	seen := e.Load()

	woke := make(chan struct{})
	go func() {
		e.Wait(seen)
		close(woke)
	}()

	time.Sleep(10 * time.Millisecond)
	e.Set()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter not woken by Set")
	}
}

func TestEventKickWakesWithoutFlag(t *testing.T) {
	e := NewEvent()
	seen := e.Load()

	woke := make(chan struct{})
	go func() {
		e.Wait(seen)
		close(woke)
	}()

	time.Sleep(10 * time.Millisecond)
	e.Kick()

	select {
	case <-woke:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter not woken by Kick")
	}
	if e.IsSet() {
		t.Fatal("Kick raised the flag")
	}
}

func TestEventWaitReturnsOnStaleSnapshot(t *testing.T) {
	e := NewEvent()
	seen := e.Load()
	e.Kick()
	// The word already moved past the snapshot; Wait must not block.
	done := make(chan struct{})
	go func() {
		e.Wait(seen)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait blocked on a stale snapshot")
	}
}
