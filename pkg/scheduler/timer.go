package scheduler

import (
	"time"
)

// timerState is a state of a scheduled trigger
type timerState int

const (
	stateIdle timerState = iota
	stateDue
	stateFiring
)

func (s timerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDue:
		return "due"
	case stateFiring:
		return "firing"
	default:
		return "unknown"
	}
}

// minuteKeyFormat identifies a local wall-clock minute
const minuteKeyFormat = "2006-01-02 15:04"

// minuteTrigger fires once for a matching wall-clock minute. Repeated checks
// within the same minute are ignored, so a poll interval finer than a minute
// can't fire twice.
type minuteTrigger struct {
	name    string
	state   timerState
	lastKey string // minute of the last fire
	dueKey  string
}

// check moves the trigger to Due if now matches and the minute was not fired yet
func (t *minuteTrigger) check(now time.Time, matches bool) bool {
	if t.state == stateFiring {
		return false
	}
	if !matches {
		t.state = stateIdle
		return false
	}
	key := now.Format(minuteKeyFormat)
	if key == t.lastKey {
		return false
	}
	t.state = stateDue
	t.dueKey = key
	return true
}

// fire runs fn for the due minute and returns to Idle
func (t *minuteTrigger) fire(fn func()) {
	if t.state != stateDue {
		return
	}
	t.state = stateFiring
	t.lastKey = t.dueKey
	defer func() { t.state = stateIdle }()
	fn()
}

// intervalTrigger fires when interval passed since the previous fire, first check is due immediately
type intervalTrigger struct {
	name     string
	interval time.Duration
	state    timerState
	next     time.Time
}

func (t *intervalTrigger) check(now time.Time) bool {
	if t.state == stateFiring {
		return false
	}
	if !t.next.IsZero() && now.Before(t.next) {
		t.state = stateIdle
		return false
	}
	t.state = stateDue
	return true
}

func (t *intervalTrigger) fire(now time.Time, fn func()) {
	if t.state != stateDue {
		return
	}
	t.state = stateFiring
	t.next = now.Add(t.interval)
	defer func() { t.state = stateIdle }()
	fn()
}
