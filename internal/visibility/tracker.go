package visibility

import (
	"portfolio-engine/internal/perf"
)

// Mode selects the tracker's lifecycle.
//
// Reveal mode is one-shot: the first intersection latches revealed and
// detaches observation. Cull mode keeps observing and toggles visibility in
// both directions so off-screen elements can skip work under low
// performance.
type Mode int

const (
	ModeReveal Mode = iota
	ModeCull
)

// Rect is an axis-aligned rectangle in scene coordinates.
type Rect struct {
	X, Y, W, H float64
}

const (
	coarseThreshold = 0.3
	fineThreshold   = 0.1
	// Fine mode grows the viewport downward so reveals start slightly
	// before the element scrolls in.
	fineMarginBottom = 50.0
)

// Tracker observes whether an element intersects the viewport. Thresholds
// are tier-dependent: the low tier uses a coarser, cheaper trigger with no
// margin.
type Tracker struct {
	mode         Mode
	threshold    float64
	marginBottom float64

	attached bool
	revealed bool
	visible  bool
}

func NewTracker(mode Mode, tier perf.Tier) *Tracker {
	t := &Tracker{
		mode:     mode,
		attached: true,
		// Assume visible until the first observation.
		visible: true,
	}
	if tier == perf.TierLow {
		t.threshold = coarseThreshold
	} else {
		t.threshold = fineThreshold
		t.marginBottom = fineMarginBottom
	}
	return t
}

// Observe updates the tracker from the element and viewport rectangles.
// No-op once detached.
func (t *Tracker) Observe(elem, viewport Rect) {
	if !t.attached {
		return
	}

	grown := viewport
	grown.H += t.marginBottom
	intersecting := intersectionRatio(elem, grown) >= t.threshold

	switch t.mode {
	case ModeReveal:
		if intersecting {
			t.revealed = true
			// One-shot: never observe again, revealed never reverts.
			t.attached = false
		}
	case ModeCull:
		t.visible = intersecting
	}
}

// Detach stops observation. Must be called when the owning element is
// unmounted.
func (t *Tracker) Detach() {
	t.attached = false
}

// Attached reports whether observation is still live.
func (t *Tracker) Attached() bool { return t.attached }

// Revealed reports the one-shot reveal flag.
func (t *Tracker) Revealed() bool { return t.revealed }

// Visible reports the culling state. Always true in reveal mode once
// revealed elements are on their own.
func (t *Tracker) Visible() bool { return t.visible }

// intersectionRatio returns the fraction of elem's area inside viewport.
func intersectionRatio(elem, viewport Rect) float64 {
	area := elem.W * elem.H
	if area <= 0 {
		return 0
	}

	left := max(elem.X, viewport.X)
	right := min(elem.X+elem.W, viewport.X+viewport.W)
	top := max(elem.Y, viewport.Y)
	bottom := min(elem.Y+elem.H, viewport.Y+viewport.H)

	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top) / area
}
