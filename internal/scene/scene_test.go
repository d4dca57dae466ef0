package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio-engine/internal/compositor"
	"portfolio-engine/internal/perf"
	"portfolio-engine/internal/sched"
	"portfolio-engine/internal/visibility"
)

const sampleContent = `
hero:
  title: Jane Doe
  tagline: systems plumber
  keywords: [resilient, curious, fast]
bio: I build things.
timeline:
  - year: "2024"
    title: Shipped the thing
    detail: It worked.
signals:
  - title: talk
    detail: a conference talk
    link: https://example.com/talk
contact:
  - label: email
    url: mailto:jane@example.com
decor:
  - texture: orb
    x: 100
    y: 200
    w: 80
    h: 80
    speed: 0.3
    interaction_speed: 0.5
    size: small
`

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadContent(t *testing.T) {
	c, err := LoadContent(writeContent(t, sampleContent))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if c.Hero.Title != "Jane Doe" {
		t.Errorf("title = %q", c.Hero.Title)
	}
	if len(c.Hero.Keywords) != 3 {
		t.Errorf("keywords = %d, want 3", len(c.Hero.Keywords))
	}
	if len(c.Decor) != 1 || c.Decor[0].Size != "small" {
		t.Errorf("decor not parsed: %+v", c.Decor)
	}
}

func TestLoadContentDefaults(t *testing.T) {
	c, err := LoadContent(writeContent(t, "decor:\n  - texture: orb\n"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if c.Hero.Title != "Untitled" {
		t.Errorf("default title = %q, want Untitled", c.Hero.Title)
	}
	d := c.Decor[0]
	if d.Size != "medium" || d.Speed != 0.1 || d.InteractionSpeed != 0.5 {
		t.Errorf("decor defaults not applied: %+v", d)
	}
}

func TestLoadContentRejectsBadSize(t *testing.T) {
	if _, err := LoadContent(writeContent(t, "decor:\n  - size: enormous\n")); err == nil {
		t.Error("invalid size accepted")
	}
}

func TestLoadContentRejectsUntitledTimeline(t *testing.T) {
	if _, err := LoadContent(writeContent(t, "timeline:\n  - year: \"2020\"\n")); err == nil {
		t.Error("timeline entry without title accepted")
	}
}

func TestParseSize(t *testing.T) {
	if s, err := ParseSize("large"); err != nil || s != compositor.SizeLarge {
		t.Errorf("ParseSize(large) = %v, %v", s, err)
	}
	if _, err := ParseSize("huge"); err == nil {
		t.Error("ParseSize accepted unknown class")
	}
}

func viewportAt(y float64) visibility.Rect {
	return visibility.Rect{X: 0, Y: y, W: 1280, H: 720}
}

func TestSectionRevealSticksAcrossRemount(t *testing.T) {
	n := AnimatedSection("fade-up")
	n.Bounds = visibility.Rect{X: 0, Y: 1000, W: 1280, H: 300}
	n.Mount(perf.TierHigh)

	n.Observe(viewportAt(0))
	if n.Revealed() {
		t.Fatal("revealed before entering viewport")
	}
	n.Observe(viewportAt(900))
	if !n.Revealed() {
		t.Fatal("not revealed inside viewport")
	}

	// Tier change remounts with fresh trackers; the reveal must hold even
	// with the viewport back at the top.
	n.Unmount()
	n.Mount(perf.TierLow)
	n.Observe(viewportAt(0))
	if !n.Revealed() {
		t.Error("remount un-revealed settled content")
	}
}

func TestParallaxCullOnlyUnderLowTier(t *testing.T) {
	n := ParallaxElement(0.2, 0.5, compositor.SizeMedium)
	n.Bounds = visibility.Rect{X: 0, Y: 5000, W: 100, H: 100}

	n.Mount(perf.TierHigh)
	n.Observe(viewportAt(0))
	if !n.Visible() {
		t.Error("high tier culled an off-screen element")
	}
	n.Unmount()

	n.Mount(perf.TierLow)
	n.Observe(viewportAt(0))
	if n.Visible() {
		t.Error("low tier did not cull an off-screen element")
	}
	n.Observe(viewportAt(4950))
	if !n.Visible() {
		t.Error("low tier kept an on-screen element culled")
	}
}

func TestMountObserveRecursesChildren(t *testing.T) {
	child := TimelineItem(0)
	child.Bounds = visibility.Rect{X: 0, Y: 100, W: 1280, H: 90}
	parent := AnimatedSection("fade-up", child)
	parent.Bounds = visibility.Rect{X: 0, Y: 0, W: 1280, H: 500}

	parent.Mount(perf.TierHigh)
	parent.Observe(viewportAt(0))
	if !child.Revealed() {
		t.Error("child tracker not driven through the parent")
	}

	visited := 0
	parent.Walk(func(*Node) { visited++ })
	if visited != 2 {
		t.Errorf("Walk visited %d nodes, want 2", visited)
	}
}

func TestRotatorCycles(t *testing.T) {
	loop := sched.NewLoop()
	r := NewRotator(loop, []string{"a", "b", "c"}, 100*time.Millisecond)
	defer r.Close()

	if r.Current() != "a" {
		t.Fatalf("initial word = %q", r.Current())
	}
	loop.Tick(time.Now(), 0.1)
	if r.Current() != "b" {
		t.Errorf("word after one period = %q, want b", r.Current())
	}
	loop.Tick(time.Now(), 0.1)
	loop.Tick(time.Now(), 0.1)
	if r.Current() != "a" {
		t.Errorf("word after wrap = %q, want a", r.Current())
	}
}

func TestRotatorSingleWordNeverRotates(t *testing.T) {
	loop := sched.NewLoop()
	r := NewRotator(loop, []string{"only"}, 10*time.Millisecond)
	defer r.Close()
	loop.Tick(time.Now(), 1.0)
	if r.Current() != "only" {
		t.Errorf("word = %q, want only", r.Current())
	}
}

func TestRotatorEmpty(t *testing.T) {
	r := NewRotator(sched.NewLoop(), nil, time.Second)
	if r.Current() != "" {
		t.Errorf("empty rotator word = %q", r.Current())
	}
}
