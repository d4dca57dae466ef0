package main

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"portfolio-engine/internal/compositor"
	"portfolio-engine/internal/convert"
	"portfolio-engine/internal/debug"
	"portfolio-engine/internal/haptics"
	"portfolio-engine/internal/input"
	"portfolio-engine/internal/particles"
	"portfolio-engine/internal/perf"
	"portfolio-engine/internal/platform"
	"portfolio-engine/internal/prefs"
	"portfolio-engine/internal/scene"
	"portfolio-engine/internal/scroll"
	"portfolio-engine/internal/sched"
	"portfolio-engine/internal/utils"
)

const (
	smoothingPeriod = 16 * time.Millisecond
	keywordPeriod   = 2400 * time.Millisecond
	revealDuration  = 0.6 // seconds
	wheelStep       = 80.0

	heroParticleCount = 60
)

type decorItem struct {
	node *scene.Node
	tex  *rl.Texture2D
	src  *scroll.Source

	// Displayed offsets, interpolated toward the compositor target over the
	// transition duration.
	curX, curY float64
}

// Window hosts the render loop and wires the pipeline together. Tick order
// within a frame is fixed: sampler, policy, input/scroll, compositor, then
// drawing, so every stage sees this frame's fresh tier and quality values.
type Window struct {
	log  *zap.Logger
	loop *sched.Loop

	sampler     *perf.Sampler
	policy      perf.Policy
	userEnabled bool
	lastTier    perf.Tier

	device input.DeviceClass
	engine *input.Engine
	haptic *haptics.Controller
	x11    *platform.X11Pointer

	sections   []*pageSection
	decor      []*decorItem
	field      *particles.Field
	rotator    *scene.Rotator
	overlay    *debug.Overlay
	showDebug  bool
	heroTitle  string
	decorFiles []string

	pageY      float64
	pageHeight float64

	touchDown  bool
	lastTouchY float64
	lastMouse  rl.Vector2

	touchTimer  *sched.Timer
	orientTimer *sched.Timer

	width, height int
	lastFrame     time.Time
}

func NewWindow(content *scene.Content, store *prefs.Store, log *zap.Logger, width, height int) *Window {
	loop := sched.NewLoop()

	device := platform.DetectDeviceClass()
	log.Info("device class detected", zap.Bool("touch", device == input.DeviceTouch))

	var provider input.OrientationProvider
	if iio, err := platform.NewIIOOrientation(); err != nil {
		log.Warn("orientation sensor scan failed", zap.Error(err))
	} else if iio != nil {
		provider = iio
		log.Info("orientation sensor found")
	}

	x11, err := platform.NewX11Pointer()
	if err != nil {
		log.Debug("no X11 connection, unfocused pointer tracking disabled", zap.Error(err))
		x11 = nil
	}

	w := &Window{
		log:         log,
		loop:        loop,
		sampler:     perf.NewSampler(loop, log),
		userEnabled: true,
		lastTier:    perf.TierHigh,
		device:      device,
		engine:      input.NewEngine(device, provider, log),
		haptic:      haptics.NewController(platform.NewGamepadRumbler(), store, platform.MobileClass(device), log),
		x11:         x11,
		field:       particles.NewField(sceneWidth, heroHeight, heroParticleCount, time.Now().UnixNano()),
		overlay:     debug.NewOverlay(),
		heroTitle:   content.Hero.Title,
		width:       width,
		height:      height,
	}
	w.policy = perf.ComputePolicy(perf.TierHigh, true, width)

	w.sections, w.pageHeight = buildPage(content)
	for _, s := range w.sections {
		s.node.Mount(w.lastTier)
	}

	for _, d := range content.Decor {
		size, _ := scene.ParseSize(d.Size)
		node := scene.ParallaxElement(d.Speed, d.InteractionSpeed, size)
		node.Bounds = rect(d.X, d.Y, d.W, d.H)
		node.Mount(w.lastTier)
		w.decor = append(w.decor, &decorItem{node: node, src: scroll.NewSource(d.Speed)})
		w.decorFiles = append(w.decorFiles, d.Texture)
	}

	w.rotator = scene.NewRotator(loop, content.Hero.Keywords, keywordPeriod)
	w.touchTimer = loop.Every(smoothingPeriod, func(time.Time) { w.engine.Touch.Tick() })
	w.orientTimer = loop.Every(smoothingPeriod, func(time.Time) { w.engine.Orientation.Tick() })

	return w
}

// Run owns the raylib window and the frame loop.
func (w *Window) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(w.width), int32(w.height), w.heroTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	w.loadDecorTextures()

	now := time.Now()
	w.lastFrame = now
	w.sampler.Start(now)
	w.loop.AddHook("policy", w.policyFrame)
	w.loop.AddHook("input", w.inputFrame)
	w.loop.AddHook("compositor", w.composeFrame)

	w.log.Info("starting render loop")
	for !rl.WindowShouldClose() {
		now = time.Now()
		dt := now.Sub(w.lastFrame).Seconds()
		w.lastFrame = now

		w.loop.Tick(now, dt)

		rl.BeginDrawing()
		w.draw()
		rl.EndDrawing()
	}
}

// Close tears down every recurring callback and observer. Nothing may
// outlive the window.
func (w *Window) Close() {
	w.rotator.Close()
	w.sampler.Stop()
	w.loop.Close()
	for _, s := range w.sections {
		s.node.Unmount()
	}
	for _, d := range w.decor {
		d.node.Unmount()
	}
	if w.x11 != nil {
		w.x11.Close()
	}
}

func (w *Window) loadDecorTextures() {
	for i, d := range w.decor {
		name := w.decorFiles[i]
		if name == "" {
			continue
		}
		path := utils.FindTexture(name)
		if path == "" {
			w.log.Warn("decor texture not found", zap.String("name", name))
			continue
		}
		tex, err := loadTexture(path)
		if err != nil {
			w.log.Error("failed to load decor texture", zap.String("path", path), zap.Error(err))
			continue
		}
		d.tex = tex
	}
}

func loadTexture(path string) (*rl.Texture2D, error) {
	if len(path) > 5 && path[len(path)-5:] == ".ftex" {
		return convert.LoadTextureNative(path)
	}
	tex := rl.LoadTexture(path)
	return &tex, nil
}

// policyFrame recomputes the animation policy from this frame's tier,
// viewport, and user flag, and pushes changes downstream.
func (w *Window) policyFrame(_ time.Time, _ float64) {
	vw := rl.GetScreenWidth()
	vh := rl.GetScreenHeight()
	w.width, w.height = vw, vh
	w.engine.SetViewport(vw, vh)

	pol := perf.ComputePolicy(w.sampler.Tier(), w.userEnabled, vw)
	if pol == w.policy {
		return
	}
	w.policy = pol
	w.engine.SetQuality(pol.QualityFactor)
	w.field.SetPolicy(pol)
	for _, d := range w.decor {
		d.src.SetPolicy(pol)
	}

	// Constrained performance halves the smoothing rate.
	period := smoothingPeriod
	if pol.Tier == perf.TierLow {
		period = 2 * smoothingPeriod
	}
	w.touchTimer.SetPeriod(period)
	w.orientTimer.SetPeriod(period)

	if pol.Tier != w.lastTier {
		w.remount(pol.Tier)
		w.lastTier = pol.Tier
	}
}

// remount recreates visibility observation under the new tier's thresholds.
// Reveal state is latched on the nodes, so settled sections stay revealed.
func (w *Window) remount(tier perf.Tier) {
	for _, s := range w.sections {
		s.node.Unmount()
		s.node.Mount(tier)
	}
	for _, d := range w.decor {
		d.node.Unmount()
		d.node.Mount(tier)
	}
}

// inputFrame polls raylib input and feeds the fusion engine and scroll
// sources. Event streams are coalesced inside the engine, one update per
// frame.
func (w *Window) inputFrame(now time.Time, _ float64) {
	// Touch, on touch-capable deployments.
	if w.device == input.DeviceTouch {
		w.pollTouch(now)
	}

	// Mouse: window-relative while focused, X11 root pointer otherwise
	// (kiosk/wallpaper mode keeps reacting when unfocused).
	if rl.IsWindowFocused() {
		mp := rl.GetMousePosition()
		if mp.X != w.lastMouse.X || mp.Y != w.lastMouse.Y {
			w.lastMouse = mp
			w.engine.MouseMove(float64(mp.X), float64(mp.Y))
		}
	} else if w.x11 != nil {
		if gx, gy, err := w.x11.Position(); err == nil {
			w.engine.MouseMove(float64(gx), float64(gy))
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.scrollBy(float64(-wheel) * wheelStep)
	}

	if rl.IsKeyPressed(rl.KeyF8) {
		w.showDebug = !w.showDebug
	}
	if rl.IsKeyPressed(rl.KeyB) {
		w.overlay.ShowBounds = !w.overlay.ShowBounds
	}
	if rl.IsKeyPressed(rl.KeyH) {
		enabled := w.haptic.Toggle()
		w.log.Info("haptics toggled", zap.Bool("enabled", enabled))
	}
	if rl.IsKeyPressed(rl.KeyA) {
		w.userEnabled = !w.userEnabled
		w.log.Info("animation toggled", zap.Bool("enabled", w.userEnabled))
	}

	w.engine.Frame()
	for _, d := range w.decor {
		d.src.Frame()
	}
}

func (w *Window) pollTouch(now time.Time) {
	if rl.GetTouchPointCount() > 0 {
		pos := rl.GetTouchPosition(0)
		p := w.normalizeScreen(float64(pos.X), float64(pos.Y))
		if !w.touchDown {
			w.touchDown = true
			w.lastTouchY = float64(pos.Y)
			w.engine.TouchStart(p)
			w.haptic.TouchPulse(now)
			return
		}
		w.engine.TouchMove(p)
		dy := float64(pos.Y) - w.lastTouchY
		if dy != 0 {
			w.scrollBy(-dy)
			w.lastTouchY = float64(pos.Y)
		}
		if math.Abs(dy) > 24 {
			w.haptic.MovePulse(now)
		}
		return
	}
	if w.touchDown {
		w.touchDown = false
		w.engine.TouchEnd()
		w.haptic.Vibrate(haptics.Release)
	}
}

func (w *Window) normalizeScreen(x, y float64) input.Vector {
	fw := float64(w.width)
	fh := float64(w.height)
	if fw <= 0 || fh <= 0 {
		return input.Vector{}
	}
	return input.Vector{X: (x - fw/2) / fw, Y: (y - fh/2) / fh}
}

func (w *Window) scrollBy(delta float64) {
	maxY := w.pageHeight - w.sceneViewHeight()
	if maxY < 0 {
		maxY = 0
	}
	w.pageY = math.Max(0, math.Min(w.pageY+delta, maxY))
	for _, d := range w.decor {
		d.src.OnScroll(w.pageY)
	}
}

// renderScale maps scene coordinates to screen pixels.
func (w *Window) renderScale() float64 {
	return float64(w.width) / sceneWidth
}

func (w *Window) sceneViewHeight() float64 {
	scale := w.renderScale()
	if scale <= 0 {
		return float64(w.height)
	}
	return float64(w.height) / scale
}

// composeFrame observes visibility, advances reveal animations, and
// composes decor transforms from this frame's scroll offset and interaction
// vector.
func (w *Window) composeFrame(_ time.Time, dt float64) {
	viewport := rect(0, w.pageY, sceneWidth, w.sceneViewHeight())

	for _, s := range w.sections {
		s.node.Observe(viewport)
		advanceReveal(&s.reveal, s.node, 0, dt, w.policy.ShouldAnimate)
		for _, r := range s.rows {
			advanceReveal(&r.reveal, r.node, r.node.Delay.Seconds(), dt, w.policy.ShouldAnimate)
		}
	}

	iv := w.engine.Vector()
	for _, d := range w.decor {
		d.node.Observe(viewport)
		tr := compositor.Compose(d.node.Element, d.src.Offset(), iv, w.policy, d.node.Visible())
		if tr.Rest {
			d.curX, d.curY = 0, 0
			continue
		}
		// Exponential approach over the transition duration.
		alpha := 1.0
		if secs := tr.Duration.Seconds(); secs > 0 {
			alpha = math.Min(1, dt/secs)
		}
		d.curX += (tr.X - d.curX) * alpha
		d.curY += (tr.Y - d.curY) * alpha
	}

	w.field.Update(dt)
}

// advanceReveal moves a reveal animation toward 1 once its node has entered
// the viewport and its stagger delay has elapsed. With animation disabled
// the content must still be readable, so progress snaps to 1.
func advanceReveal(progress *float64, node *scene.Node, delay, dt float64, animate bool) {
	if *progress >= 1 {
		return
	}
	if !node.Revealed() {
		return
	}
	if !animate {
		*progress = 1
		return
	}
	// Consume the stagger delay before the fade starts. Progress below zero
	// encodes remaining delay.
	if *progress == 0 && delay > 0 {
		*progress = -delay / revealDuration
	}
	*progress += dt / revealDuration
	if *progress > 1 {
		*progress = 1
	}
}
