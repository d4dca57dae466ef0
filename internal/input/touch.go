package input

// TouchPhase is the touch source state machine:
// Idle -> (touchstart) -> Active -> (touchend) -> Releasing -> Idle.
// A touchstart while Releasing jumps straight back to Active, discarding the
// decay in progress.
type TouchPhase int

const (
	TouchIdle TouchPhase = iota
	TouchActive
	TouchReleasing
)

const (
	touchSmoothing = 0.1
	releaseDecay   = 0.92
	releaseEpsilon = 0.01
)

// TouchState tracks the active touch in normalized screen coordinates.
// smoothed follows raw exponentially; after release, raw decays toward the
// origin geometrically until both components are within epsilon, then snaps
// to exactly (0,0).
type TouchState struct {
	raw      Vector
	smoothed Vector
	phase    TouchPhase

	gate       FrameGate
	pendingRaw Vector
}

// Begin handles touchstart. Always enters Active, even mid-decay.
func (t *TouchState) Begin(p Vector) {
	t.raw = p
	t.pendingRaw = p
	t.phase = TouchActive
}

// Move records a touchmove. The position is applied on the next frame, not
// per event.
func (t *TouchState) Move(p Vector) {
	if t.phase != TouchActive {
		return
	}
	t.pendingRaw = p
	t.gate.Mark()
}

// End handles touchend, starting the inertial return to center.
func (t *TouchState) End() {
	if t.phase == TouchActive {
		t.phase = TouchReleasing
	}
}

// Frame applies at most one coalesced move per rendering frame.
func (t *TouchState) Frame() {
	if t.gate.Consume() {
		t.raw = t.pendingRaw
	}
}

// Tick advances smoothing and release decay. Called on the smoothing timer,
// not per event.
func (t *TouchState) Tick() {
	if t.phase == TouchReleasing {
		t.raw = t.raw.Scale(releaseDecay)
		if abs(t.raw.X) < releaseEpsilon && abs(t.raw.Y) < releaseEpsilon {
			t.raw = Vector{}
			t.smoothed = Vector{}
			t.phase = TouchIdle
			return
		}
	}
	t.smoothed.X += (t.raw.X - t.smoothed.X) * touchSmoothing
	t.smoothed.Y += (t.raw.Y - t.smoothed.Y) * touchSmoothing
}

// InUse reports whether touch should still drive the interaction vector,
// which includes the release decay back to center.
func (t *TouchState) InUse() bool { return t.phase != TouchIdle }

// Active reports whether a finger is currently down.
func (t *TouchState) Active() bool { return t.phase == TouchActive }

// Phase exposes the state machine position.
func (t *TouchState) Phase() TouchPhase { return t.phase }

// Raw returns the current raw position.
func (t *TouchState) Raw() Vector { return t.raw }

// Smoothed returns the exponentially smoothed follower position.
func (t *TouchState) Smoothed() Vector { return t.smoothed }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
