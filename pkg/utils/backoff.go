package utils

import "time"

// Backoff doubles Delay on every attempt, capped at MaxDelay when set.
type Backoff struct {
	MaxRetries int
	Delay      time.Duration
	MaxDelay   time.Duration
}

// NextDelay returns the wait before retry number attempt (zero based).
func (b Backoff) NextDelay(attempt int) time.Duration {
	d := b.Delay << attempt
	if b.MaxDelay > 0 && d > b.MaxDelay {
		return b.MaxDelay
	}
	return d
}
