package anim

import (
	"sort"
	"time"
)

// Timer schedules a one-shot callback after a delay.
type Timer interface {
	AfterFunc(d time.Duration, f func())
}

type pendingCall struct {
	due time.Time
	seq int
	f   func()
}

// DeadlineTimer is a Timer whose callbacks run from the frame loop. The
// host calls Poll once per frame; due callbacks run there, on the same
// goroutine as rendering, so nothing they touch needs locking.
type DeadlineTimer struct {
	clock   Clock
	pending []pendingCall
	seq     int
}

func NewDeadlineTimer(clock Clock) *DeadlineTimer {
	return &DeadlineTimer{clock: clock}
}

func (t *DeadlineTimer) AfterFunc(d time.Duration, f func()) {
	t.seq++
	t.pending = append(t.pending, pendingCall{
		due: t.clock.Now().Add(d),
		seq: t.seq,
		f:   f,
	})
}

// Poll runs every callback whose deadline has passed, earliest first, and
// returns how many ran. Callbacks scheduled while polling wait for the next
// Poll.
func (t *DeadlineTimer) Poll() int {
	if len(t.pending) == 0 {
		return 0
	}
	now := t.clock.Now()
	var due, rest []pendingCall
	for _, c := range t.pending {
		if !now.Before(c.due) {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	t.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, c := range due {
		c.f()
	}
	return len(due)
}

// Pending reports how many callbacks are waiting.
func (t *DeadlineTimer) Pending() int {
	return len(t.pending)
}
