package input

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
)

type fakeSensor struct {
	available bool
	granted   bool
	grantErr  error
	reading   Vec3
	requests  int
}

func (f *fakeSensor) Available() bool { return f.available }

func (f *fakeSensor) RequestAccess() (bool, error) {
	f.requests++
	return f.granted, f.grantErr
}

func (f *fakeSensor) Read() (Vec3, error) { return f.reading, nil }

func pointerEngine() *Engine {
	e := NewEngine(DevicePointer, nil, zap.NewNop())
	e.SetViewport(1000, 800)
	return e
}

func touchEngine(sensor OrientationProvider) *Engine {
	e := NewEngine(DeviceTouch, sensor, zap.NewNop())
	e.SetViewport(1000, 800)
	return e
}

func TestMouseNormalizedFromCenter(t *testing.T) {
	e := pointerEngine()

	// Right edge, vertical center: x offset is half the width.
	e.MouseMove(1000, 400)
	e.Frame()
	v := e.Vector()
	if math.Abs(v.X-0.5) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("vector = %+v, want {0.5 0}", v)
	}

	// Dead center reads zero.
	e.MouseMove(500, 400)
	e.Frame()
	if v := e.Vector(); v != (Vector{}) {
		t.Errorf("center vector = %+v, want origin", v)
	}
}

func TestMouseQualityAttenuation(t *testing.T) {
	e := pointerEngine()
	e.SetQuality(0.7)
	e.MouseMove(1000, 400)
	e.Frame()
	if got := e.Vector().X; math.Abs(got-0.35) > 1e-9 {
		t.Errorf("vector.X = %v at quality 0.7, want 0.35", got)
	}
}

func TestMouseEventsCoalesced(t *testing.T) {
	e := pointerEngine()
	e.MouseMove(0, 400)
	e.MouseMove(250, 400)
	e.MouseMove(750, 400)
	e.Frame()
	if got := e.Vector().X; math.Abs(got-0.25) > 1e-9 {
		t.Errorf("vector.X = %v, want 0.25 from the last event only", got)
	}
}

func TestPointerDeviceAlwaysMouse(t *testing.T) {
	e := pointerEngine()
	e.TouchStart(Vector{X: 0.5})
	if got := e.ActiveSource(); got != SourceMouse {
		t.Errorf("pointer device source = %s, want mouse", got)
	}
}

func TestTouchBeatsOrientation(t *testing.T) {
	sensor := &fakeSensor{available: true, granted: true, reading: Vec3{X: 2}}
	e := touchEngine(sensor)

	e.TouchStart(Vector{X: 0.3})
	if got := e.ActiveSource(); got != SourceTouch {
		t.Fatalf("source during touch = %s, want touch", got)
	}

	// Release decay still counts as touch; orientation waits its turn.
	e.TouchEnd()
	if got := e.ActiveSource(); got != SourceTouch {
		t.Errorf("source during release = %s, want touch", got)
	}

	// Drain the decay; orientation takes over.
	for i := 0; i < 200; i++ {
		e.Touch.Tick()
	}
	if got := e.ActiveSource(); got != SourceOrientation {
		t.Errorf("source after release settled = %s, want orientation", got)
	}
}

func TestNoSourceWithoutSensor(t *testing.T) {
	e := touchEngine(nil)
	if got := e.ActiveSource(); got != SourceNone {
		t.Errorf("source = %s with no touch and no sensor, want none", got)
	}
	if v := e.Vector(); v != (Vector{}) {
		t.Errorf("vector = %+v, want origin", v)
	}
}

func TestOrientationRequestOneShot(t *testing.T) {
	sensor := &fakeSensor{available: true, granted: false}
	e := touchEngine(sensor)

	e.TouchStart(Vector{})
	e.TouchEnd()
	e.TouchStart(Vector{})
	e.TouchEnd()

	if sensor.requests != 1 {
		t.Errorf("sensor prompted %d times, want 1; denial is permanent", sensor.requests)
	}
	if e.Orientation.Granted() {
		t.Error("denied sensor reported granted")
	}
}

func TestOrientationRequestErrorPermanent(t *testing.T) {
	sensor := &fakeSensor{available: true, grantErr: errors.New("sensor busy")}
	e := touchEngine(sensor)
	e.TouchStart(Vector{})
	e.TouchStart(Vector{})
	if sensor.requests != 1 {
		t.Errorf("sensor prompted %d times after error, want 1", sensor.requests)
	}
}

func TestOrientationVectorUsesTiltCoefficients(t *testing.T) {
	sensor := &fakeSensor{available: true, granted: true, reading: Vec3{X: 1, Y: 1}}
	e := touchEngine(sensor)
	e.TouchStart(Vector{})
	e.TouchEnd()
	for i := 0; i < 500; i++ {
		e.Touch.Tick()
		e.Orientation.Tick()
	}

	if e.ActiveSource() != SourceOrientation {
		t.Fatalf("source = %s, want orientation", e.ActiveSource())
	}
	v := e.Vector()
	// Smoothed tilt converges on the reading; x scales by 0.15, y by 0.10.
	if math.Abs(v.X-0.15) > 0.01 {
		t.Errorf("vector.X = %v, want ~0.15", v.X)
	}
	if math.Abs(v.Y-0.10) > 0.01 {
		t.Errorf("vector.Y = %v, want ~0.10", v.Y)
	}
}

func TestTouchVectorSizeMultiplier(t *testing.T) {
	tests := []struct {
		width int
		want  float64
	}{
		{320, 0.7},
		{600, 0.85},
		{1280, 1.0},
	}
	for _, tt := range tests {
		e := touchEngine(nil)
		e.SetViewport(tt.width, 800)
		e.TouchStart(Vector{X: 0.5})
		for i := 0; i < 200; i++ {
			e.Touch.Tick()
		}
		want := 0.5 * tt.want
		if got := e.Vector().X; math.Abs(got-want) > 0.01 {
			t.Errorf("width %d: vector.X = %v, want ~%v", tt.width, got, want)
		}
	}
}

func TestTouchVectorPreScaleClamp(t *testing.T) {
	e := touchEngine(nil)
	e.TouchStart(Vector{X: 1.0})
	for i := 0; i < 500; i++ {
		e.Touch.Tick()
	}
	// Clamped to 0.8 before the size multiplier, so never the raw 1.0.
	if got := e.Vector().X; math.Abs(got-0.8) > 0.01 {
		t.Errorf("vector.X = %v, want ~0.8", got)
	}
}
