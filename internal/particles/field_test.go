package particles

import (
	"testing"

	"portfolio-engine/internal/perf"
)

func TestPopulationReachesTarget(t *testing.T) {
	f := NewField(1280, 560, 60, 1)
	f.Update(0.016)
	if f.Count() != 60 {
		t.Errorf("count = %d after first update, want 60", f.Count())
	}
}

func TestPopulationScalesWithQuality(t *testing.T) {
	tests := []struct {
		quality float64
		want    int
	}{
		{1.0, 60},
		{0.7, 42},
		{0.4, 24},
	}
	for _, tt := range tests {
		f := NewField(1280, 560, 60, 1)
		f.SetPolicy(perf.Policy{QualityFactor: tt.quality, ShouldAnimate: true})
		f.Update(0.016)
		if f.Count() != tt.want {
			t.Errorf("quality %v: count = %d, want %d", tt.quality, f.Count(), tt.want)
		}
	}
}

func TestFieldParksWhenDisabled(t *testing.T) {
	f := NewField(1280, 560, 60, 1)
	f.Update(0.016)

	f.SetPolicy(perf.Policy{QualityFactor: 1.0, ShouldAnimate: false})
	if f.Count() != 0 {
		t.Fatalf("count = %d while parked, want 0", f.Count())
	}
	f.Update(0.016)
	if f.Count() != 0 {
		t.Errorf("parked field respawned %d particles", f.Count())
	}

	// Re-enabling repopulates on the next update.
	f.SetPolicy(perf.Policy{QualityFactor: 1.0, ShouldAnimate: true})
	f.Update(0.016)
	if f.Count() != 60 {
		t.Errorf("count = %d after unparking, want 60", f.Count())
	}
}

func TestParticlesDriftUpward(t *testing.T) {
	f := NewField(1280, 560, 10, 7)
	f.Update(0.016)
	before := make([]float64, f.Count())
	for i, p := range f.Particles() {
		before[i] = p.Y
	}

	f.Update(0.5)
	for i, p := range f.Particles() {
		if i < len(before) && p.Y >= before[i] {
			t.Fatalf("particle %d did not rise: %v -> %v", i, before[i], p.Y)
		}
	}
}

func TestSeededFieldIsDeterministic(t *testing.T) {
	a := NewField(1280, 560, 20, 42)
	b := NewField(1280, 560, 20, 42)
	a.Update(0.016)
	b.Update(0.016)

	pa, pb := a.Particles(), b.Particles()
	if len(pa) != len(pb) {
		t.Fatalf("particle counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}
