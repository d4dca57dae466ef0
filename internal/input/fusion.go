package input

import (
	"go.uber.org/zap"
)

// Source identifies which input currently drives the interaction vector.
// Exactly one source is active at a time.
type Source int

const (
	SourceNone Source = iota
	SourceMouse
	SourceTouch
	SourceOrientation
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	case SourceOrientation:
		return "orientation"
	}
	return "none"
}

// DeviceClass splits devices into pointer-driven (desktop) and
// touch-capable (tablet/kiosk touchscreen).
type DeviceClass int

const (
	DevicePointer DeviceClass = iota
	DeviceTouch
)

const (
	// Sources clamp to this range before any scaling is applied.
	preScaleClamp = 0.8

	// Tilt axes map to much smaller offsets than direct pointing.
	tiltCoeffX = 0.15
	tiltCoeffY = 0.10

	// Narrow screens get attenuated movement.
	narrowWidth  = 400
	narrowMult   = 0.7
	mediumWidth  = 768
	mediumMult   = 0.85
)

// Engine fuses mouse, touch, and device tilt into one normalized interaction
// vector. Selection follows a fixed precedence rather than blending: on
// touch devices touch beats orientation beats nothing; on pointer devices
// the mouse always wins.
type Engine struct {
	device DeviceClass
	log    *zap.Logger

	Touch       *TouchState
	Orientation *OrientationState

	mouse        Vector
	mouseGate    FrameGate
	pendingMouse Vector

	viewportW int
	viewportH int
	quality   float64
}

func NewEngine(device DeviceClass, provider OrientationProvider, log *zap.Logger) *Engine {
	return &Engine{
		device:      device,
		log:         log,
		Touch:       &TouchState{},
		Orientation: NewOrientationState(provider, log),
		quality:     1.0,
	}
}

// SetViewport updates the dimensions used for normalization and the
// screen-size multiplier.
func (e *Engine) SetViewport(w, h int) {
	e.viewportW = w
	e.viewportH = h
}

// SetQuality applies the policy's current quality factor to mouse scaling.
func (e *Engine) SetQuality(q float64) {
	e.quality = q
}

// MouseMove records a pointer position in screen pixels. Coalesced to one
// processed update per frame.
func (e *Engine) MouseMove(screenX, screenY float64) {
	e.pendingMouse = Vector{X: screenX, Y: screenY}
	e.mouseGate.Mark()
}

// TouchStart begins a touch at a normalized position and lazily requests
// orientation access on the first touch of the session (some platforms only
// allow sensor access from a user gesture).
func (e *Engine) TouchStart(p Vector) {
	e.Touch.Begin(p)
	e.Orientation.Request()
}

// TouchMove records a coalesced touch position update.
func (e *Engine) TouchMove(p Vector) {
	e.Touch.Move(p)
}

// TouchEnd releases the touch, starting the return-to-center decay.
func (e *Engine) TouchEnd() {
	e.Touch.End()
}

// Frame is the per-frame hook: applies at most one pending mouse and touch
// update, normalizing the mouse offset from screen center.
func (e *Engine) Frame() {
	if e.mouseGate.Consume() && e.viewportW > 0 && e.viewportH > 0 {
		cx := float64(e.viewportW) / 2
		cy := float64(e.viewportH) / 2
		e.mouse = Vector{
			X: (e.pendingMouse.X - cx) / float64(e.viewportW),
			Y: (e.pendingMouse.Y - cy) / float64(e.viewportH),
		}
	}
	e.Touch.Frame()
}

// ActiveSource selects the single source by device class and state.
func (e *Engine) ActiveSource() Source {
	if e.device == DevicePointer {
		return SourceMouse
	}
	if e.Touch.InUse() {
		return SourceTouch
	}
	if e.Orientation.Granted() {
		return SourceOrientation
	}
	return SourceNone
}

// Vector returns the fused interaction vector for the current frame.
func (e *Engine) Vector() Vector {
	switch e.ActiveSource() {
	case SourceTouch:
		return e.Touch.Smoothed().Clamp(preScaleClamp).Scale(e.sizeMultiplier())
	case SourceOrientation:
		tilt := e.Orientation.Smoothed()
		v := Vector{X: tilt.X * tiltCoeffX, Y: tilt.Y * tiltCoeffY}
		return v.Clamp(preScaleClamp).Scale(e.sizeMultiplier())
	case SourceMouse:
		return e.mouse.Clamp(preScaleClamp).Scale(e.quality)
	}
	return Vector{}
}

func (e *Engine) sizeMultiplier() float64 {
	switch {
	case e.viewportW < narrowWidth:
		return narrowMult
	case e.viewportW < mediumWidth:
		return mediumMult
	}
	return 1.0
}
