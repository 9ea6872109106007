package scheduler

import "time"

// Clock provides current time, replaced in tests
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
