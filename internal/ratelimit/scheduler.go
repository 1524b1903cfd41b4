package ratelimit

import "time"

// Timer is a deferred execution that can still be stopped
type Timer interface {
	Stop() bool
}

// Scheduler supplies the clock and the "run after d" primitive a Limiter needs
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// systemScheduler is backed by the runtime timers
type systemScheduler struct{}

func (systemScheduler) Now() time.Time { return time.Now() }

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler returns the wall-clock scheduler used when none is given
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
