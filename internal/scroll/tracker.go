// Package scroll derives scroll state from a scrollable source and publishes
// it at a bounded rate.
package scroll

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"scrollwatch/internal/domain"
	"scrollwatch/internal/ratelimit"
)

// DefaultInterval is the sampling window used when Config.Interval is zero
const DefaultInterval = 200 * time.Millisecond

// ErrInvalidInterval is returned by Activate for a negative interval
var ErrInvalidInterval = ratelimit.ErrInvalidInterval

// Config is fixed for the lifetime of one activation
type Config struct {
	// Source to track. nil disables tracking.
	Source Source
	// Interval between samples. The zero value means DefaultInterval so a
	// Config literal without one still tracks; this is the one place a
	// missing interval is defaulted rather than rejected. Negative values
	// fail with ErrInvalidInterval, and config files reject throttle_ms <= 0
	// before a Config is ever built.
	Interval time.Duration
	// Scheduler drives the throttle window; nil means the wall clock
	Scheduler ratelimit.Scheduler
}

func (c Config) interval() time.Duration {
	if c.Interval == 0 {
		return DefaultInterval
	}
	return c.Interval
}

// Subscription is the handle returned by Activate
type Subscription struct {
	mu     sync.Mutex
	cancel func()
}

// Cancel removes the source listener and any pending sample. After Cancel
// returns publish is not called again. Calling it twice is a no-op.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Active reports whether the subscription is still listening
func (s *Subscription) Active() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Activate starts tracking cfg.Source and calls publish with every new
// snapshot. A nil source returns an inert subscription and never publishes.
//
// publish runs while the throttle lock is held, possibly on a timer
// goroutine. It must not block on the goroutine that cancels the subscription
// and must not cancel it itself; hand snapshots off to a channel or event bus.
func Activate(cfg Config, publish func(domain.Snapshot)) (*Subscription, error) {
	if cfg.Source == nil {
		return &Subscription{}, nil
	}
	if publish == nil {
		publish = func(domain.Snapshot) {}
	}

	s := &sampler{source: cfg.Source, publish: publish}
	lim, err := ratelimit.New(s.sample, cfg.interval(), ratelimit.WithScheduler(cfg.Scheduler))
	if err != nil {
		return nil, fmt.Errorf("activate scroll tracker: %w", err)
	}

	remove := cfg.Source.Listen(EventScroll, lim.Fire)
	return &Subscription{
		cancel: func() {
			remove()
			lim.Cancel()
		},
	}, nil
}

// Deactivate cancels sub. Safe on nil and on an already cancelled handle.
func Deactivate(sub *Subscription) {
	sub.Cancel()
}

// sampler holds the history of one activation. It is only touched from the
// limiter's action, which the limiter serializes.
type sampler struct {
	source   Source
	publish  func(domain.Snapshot)
	last     domain.Snapshot
	sampled  bool
	degraded bool
}

func (s *sampler) sample() {
	x, y, ok := ReadOffsets(s.source)
	if !ok {
		if !s.degraded {
			log.Printf("Tracker: source %T exposes no scroll offsets, skipping samples", s.source)
			s.degraded = true
		}
		return
	}

	if x == s.last.X && y == s.last.Y {
		return
	}

	next := domain.Snapshot{
		X:             x,
		Y:             y,
		ScrollingDown: s.sampled && y > s.last.Y,
	}
	s.last = next
	s.sampled = true
	s.publish(next)
}

// State is the lifecycle state of a Tracker
type State int

const (
	StateInactive State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	default:
		return "inactive"
	}
}

// ErrAlreadyActive is returned when activating a Tracker that is running
var ErrAlreadyActive = errors.New("scroll tracker already active")

// Tracker owns at most one subscription at a time, for hosts that switch the
// tracked surface over their lifetime.
type Tracker struct {
	mu  sync.Mutex
	sub *Subscription
}

// NewTracker creates an inactive tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Activate starts tracking. A disabled config leaves the tracker inactive.
func (t *Tracker) Activate(cfg Config, publish func(domain.Snapshot)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub.Active() {
		return ErrAlreadyActive
	}
	sub, err := Activate(cfg, publish)
	if err != nil {
		return err
	}
	t.sub = sub
	return nil
}

// Deactivate stops tracking; a no-op when inactive
func (t *Tracker) Deactivate() {
	t.mu.Lock()
	sub := t.sub
	t.sub = nil
	t.mu.Unlock()

	Deactivate(sub)
}

// State returns the current lifecycle state
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sub.Active() {
		return StateActive
	}
	return StateInactive
}
