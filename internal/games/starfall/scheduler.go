package starfall

import "time"

// minInterval keeps a repeating timer from spinning inside one Advance.
const minInterval = time.Millisecond

type timer struct {
	due   time.Duration
	every time.Duration // Zero for one-shot timers
	fn    func()
}

// Scheduler runs callbacks against simulated time.
// Time only moves when Advance is called, so a paused or stopped session
// never fires anything.
type Scheduler struct {
	now    time.Duration
	timers []*timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every schedules fn to run every interval, first after one interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) {
	if interval < minInterval {
		interval = minInterval
	}
	s.timers = append(s.timers, &timer{due: s.now + interval, every: interval, fn: fn})
}

// After schedules fn to run once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.timers = append(s.timers, &timer{due: s.now + delay, fn: fn})
}

// Armed returns the number of pending timers.
func (s *Scheduler) Armed() int {
	return len(s.timers)
}

// Disarm drops every pending timer at once. Timers scheduled afterwards,
// including from inside a running callback, are kept.
func (s *Scheduler) Disarm() {
	s.timers = nil
}

// Advance moves simulated time forward by dt, firing due timers in order.
// A timer due several times within dt fires once per period.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt
	for {
		next := s.earliest(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			s.remove(next)
		}
		// fn may disarm; earliest rescans the current list every pass.
		next.fn()
	}
	s.now = target
}

func (s *Scheduler) earliest(limit time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

func (s *Scheduler) remove(t *timer) {
	for i, cur := range s.timers {
		if cur == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
