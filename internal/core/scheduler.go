package core

import "time"

// TimerID identifies a timer registered with a Scheduler. The zero value is never issued.
type TimerID uint64

type timer struct {
	id    TimerID
	due   time.Duration
	every time.Duration // 0 for one-shot timers
	seq   uint64        // schedule order, breaks ties between equal due times
	fn    func()
}

// Scheduler is a single-threaded virtual-time event loop.
//
// Time only moves when Advance is called: the platform advances it by one tick
// per simulation step, and tests advance it directly. Callbacks run on the
// caller's goroutine, in due-time order, and may freely schedule or cancel timers.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	seq    uint64
	timers map[TimerID]*timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the current virtual time since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every d, first firing d from now.
// Non-positive intervals are treated as one nanosecond.
func (s *Scheduler) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Nanosecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.seq++
	t := &timer{
		id:    s.nextID,
		due:   s.now + d,
		every: every,
		seq:   s.seq,
		fn:    fn,
	}
	s.timers[t.id] = t
	return t.id
}

// Cancel removes a pending timer. It reports whether the timer was still pending.
// Cancelling an unknown or already fired one-shot timer is a no-op.
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves virtual time forward by d, running every callback that
// becomes due on the way. Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.every > 0 {
			// Re-arm before running so the callback can cancel it.
			s.seq++
			t.due += t.every
			t.seq = s.seq
		} else {
			delete(s.timers, t.id)
		}

		t.fn()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// TimerGroup tracks the timers one owner created on a shared scheduler,
// so they can all be cancelled together.
type TimerGroup struct {
	sched *Scheduler
	ids   map[TimerID]struct{}
}

// NewTimerGroup creates an empty group on the given scheduler.
func NewTimerGroup(sched *Scheduler) *TimerGroup {
	return &TimerGroup{
		sched: sched,
		ids:   make(map[TimerID]struct{}),
	}
}

// Scheduler returns the underlying scheduler.
func (g *TimerGroup) Scheduler() *Scheduler {
	return g.sched
}

// After schedules a one-shot timer owned by this group.
// The handle leaves the group when the timer fires.
func (g *TimerGroup) After(d time.Duration, fn func()) TimerID {
	var id TimerID
	id = g.sched.After(d, func() {
		delete(g.ids, id)
		fn()
	})
	g.ids[id] = struct{}{}
	return id
}

// Every schedules a repeating timer owned by this group.
func (g *TimerGroup) Every(d time.Duration, fn func()) TimerID {
	id := g.sched.Every(d, fn)
	g.ids[id] = struct{}{}
	return id
}

// Cancel cancels one timer of this group.
func (g *TimerGroup) Cancel(id TimerID) {
	if _, ok := g.ids[id]; !ok {
		return
	}
	delete(g.ids, id)
	g.sched.Cancel(id)
}

// CancelAll cancels every live timer of this group. Safe to call repeatedly.
func (g *TimerGroup) CancelAll() {
	for id := range g.ids {
		g.sched.Cancel(id)
		delete(g.ids, id)
	}
}

// Len returns the number of live timers in the group.
func (g *TimerGroup) Len() int {
	return len(g.ids)
}
