package scene

import (
	"time"

	"portfolio-engine/internal/compositor"
	"portfolio-engine/internal/perf"
	"portfolio-engine/internal/visibility"
)

// Kind distinguishes the animated containers the page is built from.
type Kind int

const (
	KindText Kind = iota
	KindParallax
	KindSection
	KindTimelineItem
	KindSignalCard
)

// Node is a positioned, possibly-animated visual container. Sections,
// timeline items and cards carry a one-shot reveal tracker; parallax decor
// carries the compositor parameters and, under the low tier, a culling
// tracker.
type Node struct {
	Kind      Kind
	Animation string
	Delay     time.Duration
	Element   compositor.Element
	Text      string
	Bounds    visibility.Rect
	Children  []*Node

	tracker  *visibility.Tracker
	revealed bool
}

// ParallaxElement builds a decorative element driven by scroll and the
// interaction vector.
func ParallaxElement(speed, interactionSpeed float64, size compositor.Size, children ...*Node) *Node {
	return &Node{
		Kind: KindParallax,
		Element: compositor.Element{
			Speed:            speed,
			InteractionSpeed: interactionSpeed,
			Size:             size,
		},
		Children: children,
	}
}

// AnimatedSection builds a container that plays a named reveal animation on
// first viewport entry.
func AnimatedSection(animation string, children ...*Node) *Node {
	return &Node{Kind: KindSection, Animation: animation, Children: children}
}

// TimelineItem builds a timeline row revealed with a stagger delay.
func TimelineItem(delay time.Duration, children ...*Node) *Node {
	return &Node{Kind: KindTimelineItem, Animation: "fade-up", Delay: delay, Children: children}
}

// SignalCard builds a proof-of-work card revealed with a stagger delay.
func SignalCard(delay time.Duration, children ...*Node) *Node {
	return &Node{Kind: KindSignalCard, Animation: "fade-up", Delay: delay, Children: children}
}

// Text builds a plain copy leaf.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Mount attaches visibility observation for this node and its children.
// Reveal containers observe one-shot; parallax decor observes in culling
// mode only under the low tier, where off-screen work is skipped.
func (n *Node) Mount(tier perf.Tier) {
	switch n.Kind {
	case KindSection, KindTimelineItem, KindSignalCard:
		n.tracker = visibility.NewTracker(visibility.ModeReveal, tier)
	case KindParallax:
		if tier == perf.TierLow {
			n.tracker = visibility.NewTracker(visibility.ModeCull, tier)
		}
	}
	for _, c := range n.Children {
		c.Mount(tier)
	}
}

// Unmount detaches all observation below this node. Required on teardown so
// no tracker outlives its element.
func (n *Node) Unmount() {
	if n.tracker != nil {
		n.tracker.Detach()
		n.tracker = nil
	}
	for _, c := range n.Children {
		c.Unmount()
	}
}

// Observe feeds the viewport to every attached tracker in the subtree.
// The reveal flag latches on the node itself so remounting under a new tier
// never un-reveals settled content.
func (n *Node) Observe(viewport visibility.Rect) {
	if n.tracker != nil {
		n.tracker.Observe(n.Bounds, viewport)
		if n.tracker.Revealed() {
			n.revealed = true
		}
	}
	for _, c := range n.Children {
		c.Observe(viewport)
	}
}

// Revealed reports whether a reveal container has entered the viewport.
// Nodes without a reveal tracker are always shown.
func (n *Node) Revealed() bool {
	switch n.Kind {
	case KindSection, KindTimelineItem, KindSignalCard:
		return n.revealed || n.tracker == nil
	}
	return true
}

// Visible reports the culling state for parallax decor.
func (n *Node) Visible() bool {
	if n.tracker == nil || n.Kind != KindParallax {
		return true
	}
	return n.tracker.Visible()
}

// Walk visits the subtree depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
