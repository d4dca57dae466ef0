package scene

import (
	"time"

	"portfolio-engine/internal/sched"
)

// Rotator cycles the hero keywords on a fixed-period timer.
type Rotator struct {
	words []string
	idx   int
	timer *sched.Timer
}

// NewRotator registers the rotation timer with the loop. Close must be
// called on unmount.
func NewRotator(loop *sched.Loop, words []string, period time.Duration) *Rotator {
	r := &Rotator{words: words}
	if len(words) > 1 {
		r.timer = loop.Every(period, func(time.Time) {
			r.idx = (r.idx + 1) % len(r.words)
		})
	}
	return r
}

// Current returns the keyword to display.
func (r *Rotator) Current() string {
	if len(r.words) == 0 {
		return ""
	}
	return r.words[r.idx]
}

// Close cancels the rotation timer.
func (r *Rotator) Close() {
	if r.timer != nil {
		r.timer.Cancel()
	}
}
