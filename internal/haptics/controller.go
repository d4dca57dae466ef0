package haptics

import (
	"time"

	"go.uber.org/zap"

	"portfolio-engine/internal/prefs"
)

// Pattern is a vibration sequence in milliseconds: pulse, pause, pulse...
type Pattern []int

// Name identifies a catalogue pattern. Callers pick an intensity by name,
// never arbitrary durations.
type Name string

const (
	Touch     Name = "touch"
	Release   Name = "release"
	LongPress Name = "long-press"
	Error     Name = "error"
	Success   Name = "success"
	Gentle    Name = "gentle"
)

var catalogue = map[Name]Pattern{
	Touch:     {10},
	Release:   {5},
	LongPress: {20, 30, 20},
	Error:     {50, 100, 50},
	Success:   {15, 50, 15},
	Gentle:    {8},
}

// Rumbler abstracts the platform vibration capability.
type Rumbler interface {
	Supported() bool
	Vibrate(p Pattern) error
}

// PreferenceKey is the durable store key for the user's haptic preference.
const PreferenceKey = "haptics.enabled"

const (
	touchCooldown = 100 * time.Millisecond
	moveCooldown  = 300 * time.Millisecond
)

// Controller issues vibration pulses keyed to interaction events. Every
// pulse passes three gates: platform capability, mobile-class device, and
// the persisted user preference. Failures from the platform call are caught
// and counted, never propagated; a broken motor must not break input
// handling.
type Controller struct {
	rumbler Rumbler
	store   *prefs.Store
	log     *zap.Logger
	mobile  bool

	enabled   bool
	lastTouch time.Time
	lastMove  time.Time
	failures  int
}

// NewController loads the persisted preference (default on) and wires the
// platform rumbler. rumbler may be nil on platforms with no motor.
func NewController(rumbler Rumbler, store *prefs.Store, mobile bool, log *zap.Logger) *Controller {
	enabled := true
	if store != nil {
		enabled = store.Bool(PreferenceKey, true)
	}
	return &Controller{
		rumbler: rumbler,
		store:   store,
		log:     log,
		mobile:  mobile,
		enabled: enabled,
	}
}

// Vibrate fires a catalogue pattern, subject to gating. Unknown names are
// ignored.
func (c *Controller) Vibrate(name Name) {
	p, ok := catalogue[name]
	if !ok {
		return
	}
	c.fire(name, p)
}

// TouchPulse fires the touch-start pattern, rate limited to one pulse per
// 100ms.
func (c *Controller) TouchPulse(now time.Time) {
	if now.Sub(c.lastTouch) < touchCooldown {
		return
	}
	c.lastTouch = now
	c.Vibrate(Touch)
}

// MovePulse fires a gentle move-triggered pulse, rate limited to one per
// 300ms.
func (c *Controller) MovePulse(now time.Time) {
	if now.Sub(c.lastMove) < moveCooldown {
		return
	}
	c.lastMove = now
	c.Vibrate(Gentle)
}

// Toggle flips and persists the preference, firing a confirmation pulse
// only when transitioning to enabled. Returns the new state.
func (c *Controller) Toggle() bool {
	c.enabled = !c.enabled
	if c.store != nil {
		if err := c.store.SetBool(PreferenceKey, c.enabled); err != nil && c.log != nil {
			c.log.Warn("failed to persist haptic preference", zap.Error(err))
		}
	}
	if c.enabled {
		c.Vibrate(Success)
	}
	return c.enabled
}

// Enabled reports the current preference.
func (c *Controller) Enabled() bool { return c.enabled }

// Failures reports how many platform vibration calls have failed. Exposed
// so the host can surface chronic failures instead of discarding them.
func (c *Controller) Failures() int { return c.failures }

func (c *Controller) fire(name Name, p Pattern) {
	if c.rumbler == nil || !c.rumbler.Supported() {
		return
	}
	if !c.mobile {
		return
	}
	if !c.enabled {
		return
	}
	if err := c.rumbler.Vibrate(p); err != nil {
		c.failures++
		if c.log != nil {
			c.log.Warn("vibration failed",
				zap.String("pattern", string(name)),
				zap.Int("failures", c.failures),
				zap.Error(err))
		}
	}
}
