package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio-engine/internal/input"
	"portfolio-engine/internal/perf"
	"portfolio-engine/internal/visibility"
)

// Overlay is the in-window diagnostics panel, toggled with F8.
type Overlay struct {
	ShowBounds bool

	lineHeight int32
	fontSize   int32
}

func NewOverlay() *Overlay {
	return &Overlay{lineHeight: 18, fontSize: 14}
}

// Stats is the per-frame snapshot the overlay renders.
type Stats struct {
	Policy     perf.Policy
	AverageFPS float64
	Source     input.Source
	Vector     input.Vector
	ScrollY    float64
	Particles  int
	HapticFail int
}

// Draw renders the stats panel in the top-left corner.
func (o *Overlay) Draw(s Stats) {
	lines := []string{
		fmt.Sprintf("FPS: %d (avg %.1f)", rl.GetFPS(), s.AverageFPS),
		fmt.Sprintf("Tier: %s  quality: %.1f", s.Policy.Tier, s.Policy.QualityFactor),
		fmt.Sprintf("Animate: %v", s.Policy.ShouldAnimate),
		fmt.Sprintf("Source: %s  vec: %+.3f %+.3f", s.Source, s.Vector.X, s.Vector.Y),
		fmt.Sprintf("Scroll: %.0f", s.ScrollY),
		fmt.Sprintf("Particles: %d", s.Particles),
	}
	if s.HapticFail > 0 {
		lines = append(lines, fmt.Sprintf("Haptic failures: %d", s.HapticFail))
	}

	panelH := int32(len(lines))*o.lineHeight + 16
	rl.DrawRectangle(6, 6, 280, panelH, rl.NewColor(0, 0, 0, 170))

	y := int32(14)
	for _, line := range lines {
		rl.DrawText(line, 14, y, o.fontSize, rl.RayWhite)
		y += o.lineHeight
	}
}

// DrawBounds outlines an element rectangle in screen space, green when its
// tracker considers it visible/revealed, red otherwise.
func (o *Overlay) DrawBounds(r visibility.Rect, active bool) {
	if !o.ShowBounds {
		return
	}
	col := rl.NewColor(255, 60, 60, 200)
	if active {
		col = rl.NewColor(60, 255, 120, 200)
	}
	rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), col)
}
