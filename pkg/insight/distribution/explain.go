package distribution

import "fmt"

// Three-bucket quantization cut points for the explanation string.
const (
	sparseBelow   = 0.2 // entries per day
	frequentFrom  = 0.8
	briefBelow    = 40.0 // words per entry
	longFormAbove = 150.0
)

func explain(class Class, frequencyPerDay, magnitudeProxy float64) string {
	freq := "sparse"
	switch {
	case frequencyPerDay >= frequentFrom:
		freq = "frequent"
	case frequencyPerDay >= sparseBelow:
		freq = "moderate"
	}

	length := "brief"
	switch {
	case magnitudeProxy > longFormAbove:
		length = "long-form"
	case magnitudeProxy >= briefBelow:
		length = "medium-length"
	}

	shape := "spread evenly across days"
	switch class {
	case ClassLognormal:
		shape = "leaning on occasional heavier days"
	case ClassPowerlaw:
		shape = "concentrated in a few intense bursts"
	}

	return fmt.Sprintf("Writing is %s with %s entries, %s.", freq, length, shape)
}
