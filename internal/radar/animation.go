package radar

import (
	"time"

	"radar-panel.klederson.com/internal/config"
)

// Animation is the sweep's angle schedule: 0 to 180 over Duration, back to
// 0 over Duration, then a RepeatDelay pause before the next forward pass.
// It holds no clock of its own; callers feed it elapsed time.
type Animation struct {
	Duration    time.Duration
	RepeatDelay time.Duration
	Loop        bool
}

// NewAnimation returns a schedule with the standard repeat delay.
func NewAnimation(duration time.Duration, loop bool) Animation {
	return Animation{
		Duration:    duration,
		RepeatDelay: config.SweepRepeatDelay,
		Loop:        loop,
	}
}

// Period is the length of one forward, backward and pause cycle.
func (a Animation) Period() time.Duration {
	return 2*a.Duration + a.RepeatDelay
}

// AngleAt returns the beam angle after elapsed time. done is true once a
// non-looping schedule has completed its single cycle.
func (a Animation) AngleAt(elapsed time.Duration) (angle float64, done bool) {
	if a.Duration <= 0 || elapsed <= 0 {
		return 0, false
	}
	if !a.Loop && elapsed >= 2*a.Duration {
		return 0, true
	}

	t := elapsed
	if a.Loop {
		t = elapsed % a.Period()
	}

	switch {
	case t < a.Duration:
		return 180 * float64(t) / float64(a.Duration), false
	case t < 2*a.Duration:
		back := t - a.Duration
		return 180 * (1 - float64(back)/float64(a.Duration)), false
	default:
		return 0, false
	}
}
