package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"portfolio-engine/internal/debug"
	"portfolio-engine/internal/scene"
	"portfolio-engine/internal/visibility"
)

var (
	colBackground = rl.NewColor(16, 18, 28, 255)
	colHeroGlow   = rl.NewColor(24, 30, 48, 255)
	colText       = rl.NewColor(232, 236, 244, 255)
	colMuted      = rl.NewColor(140, 150, 168, 255)
	colAccent     = rl.NewColor(120, 200, 255, 255)
	colCard       = rl.NewColor(30, 34, 50, 255)
	colParticle   = rl.NewColor(90, 140, 220, 255)
)

const revealLift = 24.0 // scene px a row rises during its fade-up

func (w *Window) draw() {
	rl.ClearBackground(colBackground)

	scale := float32(w.renderScale())
	if scale <= 0 {
		return
	}

	w.drawHeroBackdrop(scale)
	w.drawParticles(scale)
	w.drawDecor(scale)
	for i, s := range w.sections {
		if i == 0 {
			w.drawHero(s, scale)
			continue
		}
		w.drawSection(s, scale)
	}

	if w.showDebug {
		w.drawOverlay()
	}
	if w.overlay.ShowBounds {
		w.drawBounds()
	}
}

// toScreen maps scene coordinates to screen pixels under the current
// scroll offset.
func (w *Window) toScreen(x, y float64, scale float32) (float32, float32) {
	return float32(x) * scale, float32(y-w.pageY) * scale
}

func (w *Window) drawHeroBackdrop(scale float32) {
	_, top := w.toScreen(0, 0, scale)
	h := float32(heroHeight) * scale
	if top+h < 0 {
		return
	}
	rl.DrawRectangleGradientV(0, int32(top), int32(w.width), int32(h), colHeroGlow, colBackground)
}

func (w *Window) drawParticles(scale float32) {
	for _, p := range w.field.Particles() {
		x, y := w.toScreen(p.X, p.Y, scale)
		if y < -10 || y > float32(w.height)+10 {
			continue
		}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, float32(p.Size)*scale, rl.Fade(colParticle, float32(p.Alpha)))
	}
}

func (w *Window) drawDecor(scale float32) {
	for _, d := range w.decor {
		if !d.node.Visible() {
			continue
		}
		b := d.node.Bounds
		x, y := w.toScreen(b.X+d.curX, b.Y+d.curY, scale)
		dw := float32(b.W) * scale
		dh := float32(b.H) * scale
		if y+dh < 0 || y > float32(w.height) {
			continue
		}
		if d.tex == nil {
			rl.DrawRectangleRounded(rl.Rectangle{X: x, Y: y, Width: dw, Height: dh}, 0.3, 8, rl.Fade(colCard, 0.5))
			continue
		}
		src := rl.Rectangle{Width: float32(d.tex.Width), Height: float32(d.tex.Height)}
		dst := rl.Rectangle{X: x, Y: y, Width: dw, Height: dh}
		rl.DrawTexturePro(*d.tex, src, dst, rl.Vector2{}, 0, rl.White)
	}
}

func (w *Window) drawHero(s *pageSection, scale float32) {
	alpha, lift := revealState(s.reveal)
	b := s.node.Bounds
	cx := float32(b.X+b.W/2) * scale
	_, top := w.toScreen(0, b.Y+lift, scale)

	title := s.heading
	titleSize := int32(56 * scale)
	tw := rl.MeasureText(title, titleSize)
	rl.DrawText(title, int32(cx)-tw/2, int32(top)+int32(180*scale), titleSize, rl.Fade(colText, alpha))

	if len(s.rows) > 0 && len(s.rows[0].lines) > 0 {
		tag := s.rows[0].lines[0]
		tagSize := int32(22 * scale)
		tw = rl.MeasureText(tag, tagSize)
		rl.DrawText(tag, int32(cx)-tw/2, int32(top)+int32(260*scale), tagSize, rl.Fade(colMuted, alpha))
	}

	word := w.rotator.Current()
	if word != "" {
		wordSize := int32(26 * scale)
		tw = rl.MeasureText(word, wordSize)
		rl.DrawText(word, int32(cx)-tw/2, int32(top)+int32(310*scale), wordSize, rl.Fade(colAccent, alpha))
	}
}

func (w *Window) drawSection(s *pageSection, scale float32) {
	b := s.node.Bounds
	_, top := w.toScreen(0, b.Y, scale)
	if top > float32(w.height) || top+float32(b.H)*scale < 0 {
		return
	}

	alpha, lift := revealState(s.reveal)
	headSize := int32(30 * scale)
	margin := float32(sectionPad) * scale
	rl.DrawText(s.heading, int32(margin), int32(top+float32(lift)*scale)+int32(20*scale), headSize, rl.Fade(colAccent, alpha))

	for _, r := range s.rows {
		w.drawRow(s, r, scale)
	}
}

func (w *Window) drawRow(s *pageSection, r *pageRow, scale float32) {
	alpha, lift := revealState(r.reveal)
	if alpha <= 0 {
		return
	}
	b := r.node.Bounds
	if b.W == 0 {
		// Plain text rows inherit the section's box below the heading.
		b = s.node.Bounds
		b.Y += 70
	}
	margin := float32(sectionPad) * scale
	_, top := w.toScreen(0, b.Y+lift, scale)

	if r.node.Kind == scene.KindSignalCard {
		card := rl.Rectangle{
			X:      margin,
			Y:      top,
			Width:  float32(sceneWidth-2*sectionPad) * scale,
			Height: float32(signalCardH-16) * scale,
		}
		rl.DrawRectangleRounded(card, 0.15, 6, rl.Fade(colCard, alpha))
	}

	lineSize := int32(18 * scale)
	y := int32(top) + int32(12*scale)
	for i, line := range r.lines {
		col := colText
		if i > 0 {
			col = colMuted
		}
		rl.DrawText(line, int32(margin)+int32(16*scale), y, lineSize, rl.Fade(col, alpha))
		y += int32(float32(bodyLineHeight) * scale)
	}
}

// revealState converts reveal progress into draw parameters. Negative
// progress means the stagger delay is still running, so the row is held
// invisible at its lifted position.
func revealState(progress float64) (alpha float32, lift float64) {
	if progress >= 1 {
		return 1, 0
	}
	if progress <= 0 {
		return 0, revealLift
	}
	return float32(progress), (1 - progress) * revealLift
}

func (w *Window) drawOverlay() {
	w.overlay.Draw(debug.Stats{
		Policy:     w.policy,
		AverageFPS: w.sampler.Average(),
		Source:     w.engine.ActiveSource(),
		Vector:     w.engine.Vector(),
		ScrollY:    w.pageY,
		Particles:  w.field.Count(),
		HapticFail: w.haptic.Failures(),
	})
}

func (w *Window) drawBounds() {
	scale := w.renderScale()
	for _, s := range w.sections {
		s.node.Walk(func(n *scene.Node) {
			w.overlay.DrawBounds(screenRect(n, w.pageY, scale), n.Revealed())
		})
	}
	for _, d := range w.decor {
		w.overlay.DrawBounds(screenRect(d.node, w.pageY, scale), d.node.Visible())
	}
	rl.DrawText(fmt.Sprintf("page %.0f / %.0f", w.pageY, w.pageHeight),
		10, int32(w.height)-24, 14, colMuted)
}

func screenRect(n *scene.Node, pageY, scale float64) visibility.Rect {
	b := n.Bounds
	return visibility.Rect{
		X: b.X * scale,
		Y: (b.Y - pageY) * scale,
		W: b.W * scale,
		H: b.H * scale,
	}
}
