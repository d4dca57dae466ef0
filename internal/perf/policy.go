package perf

// Policy is the derived animation decision for the current frame. It is a
// pure function of (tier, user flag, viewport width) and is recomputed
// whenever any of those change.
type Policy struct {
	Tier          Tier
	UserEnabled   bool
	QualityFactor float64
	ShouldAnimate bool
}

// Viewports at or below this width are treated as mobile-class; combined
// with a low tier the device is assumed too constrained to animate at all.
const mobileWidthCutoff = 768

// QualityFor maps a tier to the displacement attenuation factor.
func QualityFor(tier Tier) float64 {
	switch tier {
	case TierHigh:
		return 1.0
	case TierMedium:
		return 0.7
	}
	return 0.4
}

// ComputePolicy derives the animate decision and quality factor.
func ComputePolicy(tier Tier, userEnabled bool, viewportWidth int) Policy {
	animate := userEnabled
	if tier == TierLow && viewportWidth <= mobileWidthCutoff {
		animate = false
	}
	return Policy{
		Tier:          tier,
		UserEnabled:   userEnabled,
		QualityFactor: QualityFor(tier),
		ShouldAnimate: animate,
	}
}
