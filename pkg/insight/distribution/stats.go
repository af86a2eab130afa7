package distribution

import "math"

// Stats holds the distributional statistics over the daily-count array.
// Variance and skew are population moments, matching the product's tuned
// thresholds; do not switch to sample moments.
type Stats struct {
	Mean          float64
	Variance      float64
	Skew          float64 // third standardized moment
	Concentration float64 // share of volume from the top 10% of days
	GapVariance   float64 // population variance of recency gaps
}

// ComputeStats derives the stats block from daily counts and recency gaps.
// Zero days yields the zero value.
func ComputeStats(counts []DayCount, gaps []float64) Stats {
	var st Stats
	if len(counts) == 0 {
		st.GapVariance = popVariance(gaps)
		return st
	}

	values := make([]float64, len(counts))
	total := 0.0
	for i, dc := range counts {
		values[i] = float64(dc.Count)
		total += values[i]
	}

	n := float64(len(values))
	st.Mean = total / n

	var m2, m3 float64
	for _, v := range values {
		d := v - st.Mean
		m2 += d * d
		m3 += d * d * d
	}
	st.Variance = m2 / n
	if st.Variance > 0 {
		st.Skew = (m3 / n) / math.Pow(st.Variance, 1.5)
	}

	st.Concentration = concentration(values, total)
	st.GapVariance = popVariance(gaps)
	return st
}

// concentration is the fraction of total volume produced by the top 10% of
// days. At least one day is always counted; ties break by count only, so the
// result is order independent.
func concentration(values []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	// descending
	for i := 1; i < len(sorted); i++ {
		key := sorted[i]
		j := i - 1
		for j >= 0 && sorted[j] < key {
			sorted[j+1] = sorted[j]
			j--
		}
		sorted[j+1] = key
	}

	topN := len(sorted) / 10
	if topN < 1 {
		topN = 1
	}
	topSum := 0.0
	for _, v := range sorted[:topN] {
		topSum += v
	}
	return topSum / total
}

func popVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var m2 float64
	for _, v := range values {
		d := v - mean
		m2 += d * d
	}
	return m2 / float64(len(values))
}
