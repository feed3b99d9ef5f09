package economy

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. Used by tests and replays.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// FreePackRemaining returns how long until a free pack is available again.
// Both instants are compared in loc so the cooldown follows that zone's wall clock.
func FreePackRemaining(last *time.Time, now time.Time, cooldown time.Duration, loc *time.Location) time.Duration {
	if last == nil || last.IsZero() {
		return 0
	}
	if loc == nil {
		loc = time.UTC
	}
	next := last.In(loc).Add(cooldown)
	remaining := next.Sub(now.In(loc))
	if remaining < 0 {
		return 0
	}
	return remaining
}
