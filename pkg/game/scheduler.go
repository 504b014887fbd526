package game

import (
	"sort"
	"time"
)

// TimerID identifies a one-shot timer registered with a Scheduler.
// The zero value never refers to a live timer.
type TimerID uint64

// Scheduler 一次性定时器调度器
//
// 调度器没有自己的时钟：宿主每个 tick 调用 Advance(dt) 推进时间，
// 到期的回调在 Advance 内按到期时间顺序同步执行。
// 因此它既是运行时的 setTimeout，也是测试中的假时钟。
//
// 单线程使用，不加锁（所有调用都来自 ebiten 的 Update）。
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []*timer
}

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// NewScheduler creates a scheduler positioned at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current logical time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After registers fn to run once d has elapsed. A non-positive d fires on the
// next Advance call.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.timers = append(s.timers, &timer{id: s.nextID, due: s.now + d, fn: fn})
	return s.nextID
}

// Cancel removes a pending timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
}

// Pending returns the number of timers that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves time forward by dt and fires every timer that became due,
// ordered by due time and then by registration order. Timers registered by a
// callback fire in the same call if they are already due.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		// 回调看到的时间是它的到期时间，而不是本帧末尾
		s.now = t.due
		t.fn()
	}

	s.now = target
}

// popDue removes and returns the earliest timer due at or before target.
func (s *Scheduler) popDue(target time.Duration) *timer {
	if len(s.timers) == 0 {
		return nil
	}

	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].id < s.timers[j].id
	})

	first := s.timers[0]
	if first.due > target {
		return nil
	}
	s.timers = s.timers[1:]
	return first
}
