package particles

import (
	"math"
	"math/rand"

	"portfolio-engine/internal/perf"
)

// Particle is one ambient dot drifting behind the hero section.
type Particle struct {
	X, Y  float64
	Size  float64
	Alpha float64

	vy    float64
	sway  float64
	phase float64
	age   float64
}

// Field maintains the ambient particle layer. The live particle count
// scales with the quality factor and the whole field parks (no updates, no
// particles) when animation is disabled.
type Field struct {
	w, h      float64
	baseCount int
	target    int
	parked    bool
	rng       *rand.Rand

	particles []Particle
	elapsed   float64
}

func NewField(w, h float64, baseCount int, seed int64) *Field {
	return &Field{
		w:         w,
		h:         h,
		baseCount: baseCount,
		target:    baseCount,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetPolicy rescales the particle budget from the quality factor and parks
// the field when animation is off.
func (f *Field) SetPolicy(pol perf.Policy) {
	f.parked = !pol.ShouldAnimate
	if f.parked {
		f.particles = f.particles[:0]
		return
	}
	f.target = int(float64(f.baseCount) * pol.QualityFactor)
}

// Update advances drift and sway and tops the population back up to the
// current target.
func (f *Field) Update(dt float64) {
	if f.parked {
		return
	}
	f.elapsed += dt

	alive := f.particles[:0]
	for i := range f.particles {
		p := &f.particles[i]
		p.age += dt
		p.Y -= p.vy * dt
		p.X += math.Sin(f.elapsed*p.sway+p.phase) * 10 * dt
		if p.Y+p.Size < 0 {
			continue
		}
		alive = append(alive, *p)
	}
	f.particles = alive

	for len(f.particles) < f.target {
		f.particles = append(f.particles, f.spawn())
	}
	if len(f.particles) > f.target {
		f.particles = f.particles[:f.target]
	}
}

func (f *Field) spawn() Particle {
	return Particle{
		X:     f.rng.Float64() * f.w,
		Y:     f.h + f.rng.Float64()*40,
		Size:  1 + f.rng.Float64()*3,
		Alpha: 0.2 + f.rng.Float64()*0.5,
		vy:    8 + f.rng.Float64()*20,
		sway:  0.5 + f.rng.Float64(),
		phase: f.rng.Float64() * 2 * math.Pi,
	}
}

// Particles exposes the live set for drawing.
func (f *Field) Particles() []Particle { return f.particles }

// Count reports the live particle count.
func (f *Field) Count() int { return len(f.particles) }
