package signals

// Damping factors applied to the systemic lift. Contrast and systemic are
// competing readings of the same entry pair: an entry that reverses a belief
// is not also independently "about systems", so the systemic signal yields.
const (
	mismatchFactor      = 0.30
	reversalFactor      = 0.20
	otherContrastFactor = 0.50
)

// SystemicDamping returns the multiplier for the systemic lift given the
// pair's mismatch and contrast state. Factors stack multiplicatively: a
// domain-mismatched pair that also reverses a belief keeps 6% of the raw
// lift.
func SystemicDamping(domainMismatch, reversal, otherContrast bool) float64 {
	factor := 1.0
	if domainMismatch {
		factor *= mismatchFactor
	}
	switch {
	case reversal:
		factor *= reversalFactor
	case otherContrast:
		factor *= otherContrastFactor
	}
	return factor
}
