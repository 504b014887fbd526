package game

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string

	s.After(1500*time.Millisecond, func() { fired = append(fired, "celebrate") })
	s.After(1000*time.Millisecond, func() { fired = append(fired, "hide") })
	s.After(5000*time.Millisecond, func() { fired = append(fired, "confetti-off") })

	s.Advance(999 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("nothing should fire before 1000ms, got %v", fired)
	}

	s.Advance(6 * time.Second)
	want := []string{"hide", "celebrate", "confetti-off"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

func TestSchedulerSameDueKeepsRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		s.After(time.Second, func() { fired = append(fired, i) })
	}
	s.Advance(time.Second)

	if !reflect.DeepEqual(fired, []int{0, 1, 2, 3, 4}) {
		t.Errorf("fired = %v", fired)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(2*time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel of a pending timer should report true")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}
	s.Advance(3 * time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerCallbackSeesDueTime(t *testing.T) {
	s := NewScheduler()
	var at time.Duration
	s.After(1500*time.Millisecond, func() { at = s.Now() })

	s.Advance(16 * time.Second)
	if at != 1500*time.Millisecond {
		t.Errorf("callback saw Now()=%v, want 1.5s", at)
	}
	if s.Now() != 16*time.Second {
		t.Errorf("Now() after Advance = %v, want 16s", s.Now())
	}
}

func TestSchedulerNestedTimers(t *testing.T) {
	s := NewScheduler()
	var fired []string

	s.After(time.Second, func() {
		fired = append(fired, "outer")
		s.After(500*time.Millisecond, func() { fired = append(fired, "inner") })
		s.After(5*time.Second, func() { fired = append(fired, "late") })
	})

	s.Advance(2 * time.Second)
	if !reflect.DeepEqual(fired, []string{"outer", "inner"}) {
		t.Errorf("fired = %v", fired)
	}
	if s.Pending() != 1 {
		t.Errorf("expected the late timer to stay pending, got %d", s.Pending())
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 3; i++ {
		s.After(time.Duration(i)*time.Second, func() { t.Error("timer fired after CancelAll") })
	}
	s.CancelAll()
	s.Advance(10 * time.Second)
	if s.Pending() != 0 {
		t.Errorf("expected 0 pending, got %d", s.Pending())
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(-time.Second, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("negative delay should fire on the next Advance")
	}
}
