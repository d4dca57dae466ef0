package perf

import "testing"

func TestQualityFor(t *testing.T) {
	tests := []struct {
		tier Tier
		want float64
	}{
		{TierHigh, 1.0},
		{TierMedium, 0.7},
		{TierLow, 0.4},
	}
	for _, tt := range tests {
		if got := QualityFor(tt.tier); got != tt.want {
			t.Errorf("QualityFor(%s) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestComputePolicy(t *testing.T) {
	tests := []struct {
		name        string
		tier        Tier
		userEnabled bool
		width       int
		wantAnimate bool
	}{
		{"high tier desktop", TierHigh, true, 1920, true},
		{"low tier desktop keeps animating", TierLow, true, 1920, true},
		{"low tier mobile disables", TierLow, true, 768, false},
		{"low tier narrow disables", TierLow, true, 375, false},
		{"medium tier mobile keeps animating", TierMedium, true, 375, true},
		{"user off wins everywhere", TierHigh, false, 1920, false},
		{"user off on mobile", TierMedium, false, 375, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := ComputePolicy(tt.tier, tt.userEnabled, tt.width)
			if pol.ShouldAnimate != tt.wantAnimate {
				t.Errorf("ShouldAnimate = %v, want %v", pol.ShouldAnimate, tt.wantAnimate)
			}
			if pol.QualityFactor != QualityFor(tt.tier) {
				t.Errorf("QualityFactor = %v, want %v", pol.QualityFactor, QualityFor(tt.tier))
			}
		})
	}
}

// The policy must be a pure function: same inputs, same output, no hidden
// state between calls.
func TestComputePolicyPure(t *testing.T) {
	a := ComputePolicy(TierMedium, true, 1024)
	ComputePolicy(TierLow, false, 320)
	b := ComputePolicy(TierMedium, true, 1024)
	if a != b {
		t.Errorf("repeated ComputePolicy gave %+v then %+v", a, b)
	}
}
