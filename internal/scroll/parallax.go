package scroll

import (
	"portfolio-engine/internal/input"
	"portfolio-engine/internal/perf"
)

// Source derives a per-element vertical parallax offset from the page scroll
// position. Scroll events are coalesced to one recompute per frame; when the
// policy disables animation the offset is identically zero, not just stale.
type Source struct {
	speed   float64
	quality float64
	enabled bool

	gate     input.FrameGate
	pendingY float64
	pageY    float64
	offset   float64
}

// NewSource creates a parallax source with an element-specific speed
// multiplier.
func NewSource(speed float64) *Source {
	return &Source{speed: speed, quality: 1.0, enabled: true}
}

// SetPolicy applies the current animation policy.
func (s *Source) SetPolicy(pol perf.Policy) {
	s.quality = pol.QualityFactor
	s.enabled = pol.ShouldAnimate
	if !s.enabled {
		s.offset = 0
	} else {
		s.offset = s.pageY * s.speed * s.quality
	}
}

// OnScroll records a scroll position. Processed on the next frame.
func (s *Source) OnScroll(pageY float64) {
	s.pendingY = pageY
	s.gate.Mark()
}

// Frame recomputes the offset if a scroll was pending.
func (s *Source) Frame() {
	if !s.gate.Consume() {
		return
	}
	s.pageY = s.pendingY
	if !s.enabled {
		s.offset = 0
		return
	}
	s.offset = s.pageY * s.speed * s.quality
}

// Offset returns the current parallax offset, zero while disabled.
func (s *Source) Offset() float64 {
	if !s.enabled {
		return 0
	}
	return s.offset
}
