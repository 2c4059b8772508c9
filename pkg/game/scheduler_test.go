package game

import (
	"testing"
	"time"
)

func TestSchedulerRunsDueCallbacksInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(99 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("nothing should fire before 100ms, got %v", order)
	}

	s.Advance(1 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("expected [a b] at 100ms, got %v", order)
	}

	s.Advance(time.Second)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("expected c to fire last, got %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

// TestSchedulerChainedCallbacksWithinOneAdvance 回调中安排的回调在同一次推进中到期时也会执行
func TestSchedulerChainedCallbacksWithinOneAdvance(t *testing.T) {
	s := NewScheduler()
	fired := make([]time.Duration, 0)

	var tick func()
	tick = func() {
		fired = append(fired, s.Now())
		if len(fired) < 10 {
			s.After(35*time.Millisecond, tick)
		}
	}
	s.After(0, tick)

	s.Advance(100 * time.Millisecond)

	// 0, 35, 70 在 100ms 内
	if len(fired) != 3 {
		t.Fatalf("expected 3 ticks within 100ms, got %d (%v)", len(fired), fired)
	}
	for i, at := range fired {
		if want := time.Duration(i) * 35 * time.Millisecond; at != want {
			t.Errorf("tick %d fired at %v, want %v", i, at, want)
		}
	}
	if s.Now() != 100*time.Millisecond {
		t.Errorf("Now() = %v, want 100ms", s.Now())
	}
}

func TestSchedulerIgnoresNilAndClampsNegativeDelay(t *testing.T) {
	s := NewScheduler()
	s.After(time.Second, nil)
	if s.Pending() != 0 {
		t.Fatalf("nil callback should not be queued")
	}

	called := false
	s.After(-time.Second, func() { called = true })
	s.Advance(0)
	if !called {
		t.Error("negative delay should fire on the next Advance")
	}
}
