// Package ratelimit collapses bursts of calls into at most one execution per
// interval while always delivering the last call of a burst.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrInvalidInterval is returned when the interval is zero or negative
	ErrInvalidInterval = errors.New("ratelimit: interval must be positive")
	// ErrNilAction is returned when there is nothing to run
	ErrNilAction = errors.New("ratelimit: nil action")
)

// Option configures a Limiter
type Option func(*Limiter)

// WithScheduler replaces the wall clock. A nil scheduler is ignored.
func WithScheduler(s Scheduler) Option {
	return func(l *Limiter) {
		if s != nil {
			l.sched = s
		}
	}
}

// Limiter gates an action behind a time window. The window is accounted by a
// one-token rate.Limiter: an execution consumes the token, and a deferred
// execution reserves the next one.
//
// Executions are serialized under the limiter's lock, so the action must not
// call Cancel on the same limiter.
type Limiter struct {
	action   func()
	interval time.Duration
	sched    Scheduler

	mu        sync.Mutex
	lim       *rate.Limiter
	lastFire  time.Time
	timer     Timer
	seq       uint64
	cancelled bool
}

// New wraps action so that it runs at most once per interval
func New(action func(), interval time.Duration, opts ...Option) (*Limiter, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidInterval, interval)
	}

	l := &Limiter{
		action:   action,
		interval: interval,
		sched:    SystemScheduler(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lim = newWindow(interval)
	return l, nil
}

func newWindow(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Interval returns the configured window length
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Fire requests an execution. It runs the action right away when the window
// is open, otherwise it makes sure exactly one trailing execution is pending.
func (l *Limiter) Fire() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancelled {
		return
	}

	now := l.sched.Now()
	quiet := l.lastFire.IsZero() || now.Sub(l.lastFire) >= l.interval
	l.lastFire = now

	// The pending execution samples state when it runs, so it already
	// carries this call's intent.
	if l.timer != nil {
		return
	}

	if l.lim.AllowN(now, 1) {
		l.action()
		return
	}

	if quiet {
		// First call after a quiet period opens a new window even when a
		// trailing execution ran less than an interval ago.
		l.lim = newWindow(l.interval)
		l.lim.AllowN(now, 1)
		l.action()
		return
	}

	delay := l.lim.ReserveN(now, 1).DelayFrom(now)
	l.seq++
	seq := l.seq
	l.timer = l.sched.AfterFunc(delay, func() { l.flush(seq) })
}

// flush runs the trailing execution scheduled by Fire
func (l *Limiter) flush(seq uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancelled || l.timer == nil || seq != l.seq {
		return
	}
	l.timer = nil
	l.action()
}

// Pending reports whether a trailing execution is scheduled
func (l *Limiter) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timer != nil
}

// Cancel stops any pending execution. Once Cancel returns the action will not
// start again. Safe to call more than once.
func (l *Limiter) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelled = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
