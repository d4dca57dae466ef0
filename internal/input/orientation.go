package input

import (
	"go.uber.org/zap"
)

// OrientationProvider abstracts the platform tilt sensor. On platforms
// without one, Available returns false and the engine never selects the
// orientation source.
type OrientationProvider interface {
	Available() bool
	// RequestAccess asks for sensor access. Called at most once per session;
	// a denial is permanent.
	RequestAccess() (bool, error)
	Read() (Vec3, error)
}

const (
	orientationSmoothingXY = 0.08
	orientationSmoothingZ  = 0.05
)

// OrientationState tracks raw and smoothed device tilt. Smoothing runs
// slower than touch, and the z axis slower still, since tilt readings are
// noisier than pointer positions.
type OrientationState struct {
	provider OrientationProvider
	log      *zap.Logger

	raw      Vec3
	smoothed Vec3

	requested bool
	granted   bool
}

func NewOrientationState(provider OrientationProvider, log *zap.Logger) *OrientationState {
	return &OrientationState{provider: provider, log: log}
}

// Request performs the lazy one-shot access request, triggered by the first
// touch interaction. Denial or a missing sensor permanently disables the
// orientation source for this session; there is no re-prompt.
func (o *OrientationState) Request() {
	if o.requested {
		return
	}
	o.requested = true

	if o.provider == nil || !o.provider.Available() {
		if o.log != nil {
			o.log.Debug("orientation sensor not available")
		}
		return
	}

	granted, err := o.provider.RequestAccess()
	if err != nil {
		if o.log != nil {
			o.log.Warn("orientation access request failed", zap.Error(err))
		}
		return
	}
	if !granted {
		if o.log != nil {
			o.log.Info("orientation access denied, falling back to touch")
		}
		return
	}
	o.granted = true
}

// Tick samples the sensor and advances smoothing. Called on the smoothing
// timer. Read failures leave the previous raw value in place.
func (o *OrientationState) Tick() {
	if !o.granted {
		return
	}
	if v, err := o.provider.Read(); err == nil {
		o.raw = v
	}
	o.smoothed.X += (o.raw.X - o.smoothed.X) * orientationSmoothingXY
	o.smoothed.Y += (o.raw.Y - o.smoothed.Y) * orientationSmoothingXY
	o.smoothed.Z += (o.raw.Z - o.smoothed.Z) * orientationSmoothingZ
}

// Granted reports whether the sensor is usable.
func (o *OrientationState) Granted() bool { return o.granted }

// Requested reports whether the one-shot request already happened.
func (o *OrientationState) Requested() bool { return o.requested }

// Smoothed returns the smoothed tilt reading.
func (o *OrientationState) Smoothed() Vec3 { return o.smoothed }
