package distribution

import "math"

// Thresholds are the classification cut points. The values are empirically
// tuned against real journals; behavioral parity matters more than
// statistical elegance here, so treat them as configuration to preserve.
type Thresholds struct {
	PowerlawConcentration float64 `yaml:"powerlaw_concentration"`
	PowerlawSkew          float64 `yaml:"powerlaw_skew"`
	PowerlawGapVariance   float64 `yaml:"powerlaw_gap_variance"`

	LognormalSkew          float64 `yaml:"lognormal_skew"`
	LognormalConcentration float64 `yaml:"lognormal_concentration"`
	LognormalGapVariance   float64 `yaml:"lognormal_gap_variance"`

	NormalSkew          float64 `yaml:"normal_skew"`
	NormalConcentration float64 `yaml:"normal_concentration"`
	NormalGapVariance   float64 `yaml:"normal_gap_variance"`
}

// DefaultThresholds returns the tuned classification cut points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PowerlawConcentration: 0.6,
		PowerlawSkew:          2,
		PowerlawGapVariance:   100,

		LognormalSkew:          0.8,
		LognormalConcentration: 0.4,
		LognormalGapVariance:   10,

		NormalSkew:          0.4,
		NormalConcentration: 0.3,
		NormalGapVariance:   10,
	}
}

// Classify maps the stats block to a shape label. Rules are evaluated in
// priority order and the first match wins; a stats block that satisfies no
// rule falls through to lognormal. Zero activity is normal by definition.
func Classify(st Stats, hasGaps bool, th Thresholds) Class {
	if st.Mean == 0 {
		return ClassNormal
	}

	absSkew := math.Abs(st.Skew)

	switch {
	case st.Concentration >= th.PowerlawConcentration,
		absSkew >= th.PowerlawSkew,
		hasGaps && st.GapVariance > th.PowerlawGapVariance:
		return ClassPowerlaw

	case st.Skew >= th.LognormalSkew,
		st.Concentration >= th.LognormalConcentration,
		hasGaps && st.GapVariance > th.LognormalGapVariance:
		return ClassLognormal

	case absSkew <= th.NormalSkew &&
		st.Concentration <= th.NormalConcentration &&
		st.GapVariance <= th.NormalGapVariance:
		return ClassNormal

	default:
		return ClassLognormal
	}
}
