// Package ratelimittest provides a manually driven scheduler for tests.
package ratelimittest

import (
	"sort"
	"sync"
	"time"

	"scrollwatch/internal/ratelimit"
)

// Scheduler is a fake clock. Time only moves on Advance, and due callbacks
// run synchronously on the goroutine calling Advance, in due-time order.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer
}

type timer struct {
	s       *Scheduler
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

var _ ratelimit.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a fake clock starting at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the fake time
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc registers f to run once the fake clock reaches now+d
func (s *Scheduler) AfterFunc(d time.Duration, f func()) ratelimit.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &timer{s: s, at: s.now.Add(d), f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// The clock reads each timer's due time while its callback runs.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.fired = true
		s.remove(next)
		s.mu.Unlock()

		next.f()
	}
}

// Pending returns how many timers are still waiting
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) nextDue(target time.Time) *timer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		return s.timers[i].at.Before(s.timers[j].at)
	})
	if s.timers[0].at.After(target) {
		return nil
	}
	return s.timers[0]
}

func (s *Scheduler) remove(t *timer) {
	for i, candidate := range s.timers {
		if candidate == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Stop cancels the timer if it has not fired yet
func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}
