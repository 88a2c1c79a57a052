package control

import "time"

// Clock returns the current time.
type Clock func() time.Time

// Throttle admits at most one event per interval.
type Throttle struct {
	interval time.Duration
	now      Clock
	last     time.Time
}

func NewThrottle(interval time.Duration, now Clock) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{interval: interval, now: now}
}

// Allow reports whether strictly more than the interval has passed since the
// last admitted event, and if so records now as the last one.
func (t *Throttle) Allow() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) <= t.interval {
		return false
	}
	t.last = now
	return true
}

func (t *Throttle) Reset() { t.last = time.Time{} }
