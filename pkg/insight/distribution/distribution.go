// Package distribution classifies a user's writing-activity time series into
// a statistical shape and derives the numeric summaries behind the insights
// cards. All functions are total: degenerate input produces a zero-valued
// result, never an error.
package distribution

import (
	"sort"
	"time"

	"github.com/mirrorwell/insight/pkg/insight/entry"
	"github.com/mirrorwell/insight/pkg/insight/lexical"
)

// Class labels the shape of the daily-count distribution.
type Class string

const (
	ClassNormal    Class = "normal"
	ClassLognormal Class = "lognormal"
	ClassPowerlaw  Class = "powerlaw"
)

// DefaultTopSpikes is the number of spike dates reported in a window summary.
const DefaultTopSpikes = 3

// dayKey is the calendar-day bucket key format.
const dayKey = "2006-01-02"

// DayCount is one calendar day's entry count.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// WindowDistribution summarizes one time window of writing activity.
type WindowDistribution struct {
	WindowDays      int
	EntryCount      int
	Classification  Class
	FrequencyPerDay float64
	MagnitudeProxy  float64 // mean word count per entry
	RecencyGaps     []float64
	TopSpikeDates   []string
	Explanation     string
}

// DistributionResult is the richer variant used by yearly and lifetime
// callers: the window summary plus the full daily-count array, top days, and
// the headline stats block.
type DistributionResult struct {
	WindowDistribution
	DailyCounts []DayCount
	TopDays     []DayCount
	Stats       Stats
	SpikeRatio  float64 // max daily count over mean daily count
	TopShare    float64 // fraction of total volume from the top 10% of days
}

// DetailedOptions configures ComputeDetailed.
type DetailedOptions struct {
	WindowDays int
	TopN       int       // top days reported; DefaultTopSpikes when zero
	Now        time.Time // reference time; time.Now() when zero
	Thresholds *Thresholds
}

// Compute filters entries to the window ending at now, buckets them by
// calendar day, and classifies the daily-count distribution. A zero now
// means the current time. Never errors; empty input yields a zero-valued
// normal result.
func Compute(entries []entry.Entry, windowDays int, now time.Time) WindowDistribution {
	return computeWindow(entries, windowDays, now, DefaultThresholds())
}

// ComputeDetailed is Compute plus the daily-count array, top-N days, and the
// stats block.
func ComputeDetailed(entries []entry.Entry, opts DetailedOptions) DistributionResult {
	th := DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopSpikes
	}

	windowed := windowEntries(entries, opts.WindowDays, opts.Now)
	counts := dailyCounts(windowed)
	st := ComputeStats(counts, recencyGaps(windowed))

	result := DistributionResult{
		WindowDistribution: summarize(windowed, counts, opts.WindowDays, st, th),
		DailyCounts:        counts,
		TopDays:            topDays(counts, topN),
		Stats:              st,
		TopShare:           st.Concentration,
	}
	if st.Mean > 0 && len(counts) > 0 {
		max := 0
		for _, dc := range counts {
			if dc.Count > max {
				max = dc.Count
			}
		}
		result.SpikeRatio = float64(max) / st.Mean
	}
	return result
}

func computeWindow(entries []entry.Entry, windowDays int, now time.Time, th Thresholds) WindowDistribution {
	windowed := windowEntries(entries, windowDays, now)
	counts := dailyCounts(windowed)
	st := ComputeStats(counts, recencyGaps(windowed))
	return summarize(windowed, counts, windowDays, st, th)
}

func summarize(windowed []entry.Entry, counts []DayCount, windowDays int, st Stats, th Thresholds) WindowDistribution {
	d := WindowDistribution{
		WindowDays:    windowDays,
		EntryCount:    len(windowed),
		RecencyGaps:   recencyGaps(windowed),
		TopSpikeDates: topSpikeDates(counts, DefaultTopSpikes),
	}
	if windowDays > 0 {
		d.FrequencyPerDay = float64(len(windowed)) / float64(windowDays)
	}
	if len(windowed) > 0 {
		total := 0
		for _, e := range windowed {
			total += lexical.WordCount(e.Plaintext)
		}
		d.MagnitudeProxy = float64(total) / float64(len(windowed))
	}
	d.Classification = Classify(st, len(d.RecencyGaps) > 0, th)
	d.Explanation = explain(d.Classification, d.FrequencyPerDay, d.MagnitudeProxy)
	return d
}

// windowEntries keeps non-deleted entries inside [now-windowDays, now],
// sorted chronologically.
func windowEntries(entries []entry.Entry, windowDays int, now time.Time) []entry.Entry {
	if now.IsZero() {
		now = time.Now()
	}
	start := now.AddDate(0, 0, -windowDays)
	var out []entry.Entry
	for _, e := range entry.SortByCreated(entry.Active(entries)) {
		if e.CreatedAt.Before(start) || e.CreatedAt.After(now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// dailyCounts buckets entries by calendar day, returned sorted by date
// ascending. Only days with at least one entry appear.
func dailyCounts(entries []entry.Entry) []DayCount {
	buckets := make(map[string]int)
	for _, e := range entries {
		buckets[e.CreatedAt.Format(dayKey)]++
	}
	out := make([]DayCount, 0, len(buckets))
	for date, count := range buckets {
		out = append(out, DayCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// recencyGaps returns consecutive inter-entry gaps in days over the
// chronologically sorted entries.
func recencyGaps(sorted []entry.Entry) []float64 {
	if len(sorted) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].CreatedAt.Sub(sorted[i-1].CreatedAt).Hours()/24)
	}
	return gaps
}

// topSpikeDates sorts days by count descending, ties broken by date
// descending (most recent first), and returns the top n dates.
func topSpikeDates(counts []DayCount, n int) []string {
	top := topDays(counts, n)
	out := make([]string, len(top))
	for i, dc := range top {
		out[i] = dc.Date
	}
	return out
}

func topDays(counts []DayCount, n int) []DayCount {
	sorted := make([]DayCount, len(counts))
	copy(sorted, counts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
