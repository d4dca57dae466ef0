package input

// Vector is a normalized 2D interaction offset from screen center.
// Components stay within [-1, 1]; sources clamp to ±0.8 before scaling.
type Vector struct {
	X, Y float64
}

// Vec3 is a raw device orientation reading (tilt axes).
type Vec3 struct {
	X, Y, Z float64
}

// Clamp bounds both components independently to ±limit.
func (v Vector) Clamp(limit float64) Vector {
	return Vector{X: clamp(v.X, limit), Y: clamp(v.Y, limit)}
}

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// FrameGate coalesces a high-frequency event stream to at most one processed
// update per rendering frame. Handlers Mark it on every event; the frame hook
// Consumes it once.
type FrameGate struct {
	pending bool
}

func (g *FrameGate) Mark() {
	g.pending = true
}

// Consume reports whether an update was pending and clears the flag.
func (g *FrameGate) Consume() bool {
	p := g.pending
	g.pending = false
	return p
}
