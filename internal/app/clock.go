package app

import "time"

// SessionClock tracks the answer window for one question. Use a new clock per question.
type SessionClock struct {
	limit     time.Duration
	now       func() time.Time
	startedAt time.Time
	started   bool
}

func NewSessionClock(limit time.Duration, now func() time.Time) *SessionClock {
	if now == nil {
		now = time.Now
	}
	return &SessionClock{limit: limit, now: now}
}

// Start records the reference instant.
func (c *SessionClock) Start() {
	c.startedAt = c.now()
	c.started = true
}

// Limit returns the configured answer window.
func (c *SessionClock) Limit() time.Duration {
	return c.limit
}

// Elapsed is zero until Start is called.
func (c *SessionClock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.now().Sub(c.startedAt)
}

// Remaining is limit minus elapsed, never negative.
func (c *SessionClock) Remaining() time.Duration {
	remaining := c.limit - c.Elapsed()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsExpired reports whether strictly more than the limit has elapsed.
func (c *SessionClock) IsExpired() bool {
	return c.Elapsed() > c.limit
}
