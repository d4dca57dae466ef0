package sched

import (
	"time"
)

// TickFunc is a per-frame hook. dt is the elapsed time since the previous
// frame in seconds.
type TickFunc func(now time.Time, dt float64)

// Loop owns all recurring work: ordered per-frame hooks and fixed-period
// timers. The host render loop calls Tick once per frame; hooks run in
// registration order so later hooks always see values the earlier ones
// produced this frame (sampler before policy before input before compositor).
type Loop struct {
	hooks  []hook
	timers []*Timer
}

type hook struct {
	name string
	fn   TickFunc
}

func NewLoop() *Loop {
	return &Loop{}
}

// AddHook registers a per-frame hook. Hooks run in registration order.
func (l *Loop) AddHook(name string, fn TickFunc) {
	l.hooks = append(l.hooks, hook{name: name, fn: fn})
}

// RemoveHook unregisters a hook by name. Removing a name that was never
// registered is a no-op.
func (l *Loop) RemoveHook(name string) {
	for i := range l.hooks {
		if l.hooks[i].name == name {
			l.hooks = append(l.hooks[:i], l.hooks[i+1:]...)
			return
		}
	}
}

// Every schedules fn on a fixed period, driven by the loop's own ticks.
// The returned Timer must be cancelled by its owner on teardown.
func (l *Loop) Every(period time.Duration, fn func(now time.Time)) *Timer {
	t := &Timer{period: period.Seconds(), fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// Tick runs one frame: hooks in order, then due timers. Cancelled timers are
// compacted out so they cannot fire after Cancel.
func (l *Loop) Tick(now time.Time, dt float64) {
	for _, h := range l.hooks {
		h.fn(now, dt)
	}

	alive := l.timers[:0]
	for _, t := range l.timers {
		if t.cancelled {
			continue
		}
		t.advance(now, dt)
		alive = append(alive, t)
	}
	l.timers = alive
}

// Close cancels every timer and drops all hooks.
func (l *Loop) Close() {
	for _, t := range l.timers {
		t.Cancel()
	}
	l.timers = nil
	l.hooks = nil
}

// Timer is a fixed-period callback owned by the Loop. It fires at most once
// per frame even if the frame took longer than one period, which keeps slow
// frames from bursting queued callbacks.
type Timer struct {
	period    float64
	elapsed   float64
	fn        func(now time.Time)
	cancelled bool
}

// SetPeriod changes the firing period. Used to double smoothing periods
// under constrained performance.
func (t *Timer) SetPeriod(period time.Duration) {
	t.period = period.Seconds()
}

// Period reports the current firing period.
func (t *Timer) Period() time.Duration {
	return time.Duration(t.period * float64(time.Second))
}

// Cancel permanently stops the timer.
func (t *Timer) Cancel() {
	t.cancelled = true
}

func (t *Timer) advance(now time.Time, dt float64) {
	if t.period <= 0 {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed = 0
		t.fn(now)
	}
}
