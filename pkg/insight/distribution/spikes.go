package distribution

import "sort"

// Spike-day detection constants. A spike day must clear both an absolute
// floor and a multiple of the median daily count, so a two-entry day in a
// near-empty journal does not read as a burst.
const (
	MinSpikeCount   = 3
	SpikeMultiplier = 2.0
)

// SpikeDays returns the days whose count is at least MinSpikeCount and at
// least SpikeMultiplier times the median daily count, sorted by count
// descending then date descending.
func SpikeDays(counts []DayCount) []DayCount {
	if len(counts) == 0 {
		return nil
	}
	med := medianCount(counts)
	baseline := med * SpikeMultiplier
	if baseline < MinSpikeCount {
		baseline = MinSpikeCount
	}

	var out []DayCount
	for _, dc := range counts {
		if float64(dc.Count) >= baseline {
			out = append(out, dc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Date > out[j].Date
	})
	return out
}

func medianCount(counts []DayCount) float64 {
	values := make([]int, len(counts))
	for i, dc := range counts {
		values[i] = dc.Count
	}
	sort.Ints(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return float64(values[mid])
	}
	return float64(values[mid-1]+values[mid]) / 2
}
