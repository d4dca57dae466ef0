package compositor

import (
	"time"

	"portfolio-engine/internal/input"
	"portfolio-engine/internal/perf"
)

// Size classes decorative elements by footprint. Small elements move the
// most, large ones the least.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	}
	return "medium"
}

// Sensitivity is the per-class interaction multiplier.
func (s Size) Sensitivity() float64 {
	switch s {
	case SizeSmall:
		return 1.2
	case SizeLarge:
		return 0.6
	}
	return 1.0
}

// MaxDisplacement is the per-class displacement bound in scene units,
// before quality attenuation.
func (s Size) MaxDisplacement() float64 {
	switch s {
	case SizeSmall:
		return 60
	case SizeLarge:
		return 30
	}
	return 45
}

// Element holds the per-element animation parameters.
type Element struct {
	Speed            float64
	InteractionSpeed float64
	Size             Size
}

// Transform is the composed output for one element: a bounded 2D translation
// plus the transition duration used to interpolate toward it. Rest means the
// element renders at its static position with no transform or transition.
type Transform struct {
	X, Y     float64
	Duration time.Duration
	Rest     bool
}

// Base multiplier so normalized interaction offsets produce visible
// movement in scene units.
const interactionScale = 100

const (
	// Longer transitions under the low tier mask the reduced update
	// frequency.
	lowTierTransition = 350 * time.Millisecond
	normalTransition  = 120 * time.Millisecond
)

// TransitionFor returns the tier-dependent transition duration.
func TransitionFor(tier perf.Tier) time.Duration {
	if tier == perf.TierLow {
		return lowTierTransition
	}
	return normalTransition
}

// Compose combines the scroll offset and interaction vector into the
// element's transform. Each axis is clamped independently to
// ±MaxDisplacement×qualityFactor. Elements culled under the low tier skip
// the computation and render at rest.
func Compose(el Element, scrollOffset float64, iv input.Vector, pol perf.Policy, visible bool) Transform {
	if !pol.ShouldAnimate {
		return Transform{Rest: true}
	}
	if pol.Tier == perf.TierLow && !visible {
		return Transform{Rest: true}
	}

	sens := el.Size.Sensitivity()
	dx := iv.X * el.InteractionSpeed * sens * interactionScale
	dy := scrollOffset + iv.Y*el.InteractionSpeed*sens*interactionScale

	limit := el.Size.MaxDisplacement() * pol.QualityFactor
	return Transform{
		X:        clampAxis(dx, limit),
		Y:        clampAxis(dy, limit),
		Duration: TransitionFor(pol.Tier),
	}
}

func clampAxis(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
