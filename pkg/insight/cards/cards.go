// Package cards builds the display-ready "Yearly Wrap" summaries consumed
// by the share-card renderer. Cards wrap engine output; they add no new
// analysis of their own.
package cards

import (
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
)

// Builder constructs wrap cards.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a card builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// WrapCard is one shareable yearly summary.
type WrapCard struct {
	ID         string
	Year       int
	Title      string
	Highlights []string
	Stats      WrapStats
	Sources    []string // entry IDs the highlights are grounded in
}

// WrapStats is the numeric block rendered on the card.
type WrapStats struct {
	EntryCount     int
	WordsPerEntry  float64
	Classification distribution.Class
	SpikeDates     []string
	BridgeCount    int
	// Year-over-year deltas; zero when no prior year supplied.
	EntryDelta int
	WordsDelta float64
}

// BuildYearlyWrap assembles a wrap card from the year's distribution result
// and final bridge set. prev may be nil when no prior year exists. Apart
// from the ULID id, output is deterministic in its inputs.
func (b *Builder) BuildYearlyWrap(year int, dist distribution.DistributionResult, bridges []bridge.Bridge, prev *distribution.DistributionResult) WrapCard {
	card := WrapCard{
		ID:    ulid.MustNew(ulid.Now(), b.entropy).String(),
		Year:  year,
		Title: fmt.Sprintf("Your %d in writing", year),
		Stats: WrapStats{
			EntryCount:     dist.EntryCount,
			WordsPerEntry:  dist.MagnitudeProxy,
			Classification: dist.Classification,
			SpikeDates:     dist.TopSpikeDates,
			BridgeCount:    len(bridges),
		},
	}

	card.Highlights = append(card.Highlights, dist.Explanation)
	if len(dist.TopSpikeDates) > 0 {
		card.Highlights = append(card.Highlights,
			fmt.Sprintf("Biggest writing day: %s.", dist.TopSpikeDates[0]))
	}
	if len(bridges) > 0 {
		top := bridges[0]
		card.Highlights = append(card.Highlights,
			fmt.Sprintf("Threads between entries: %d. %s", len(bridges), top.Explanation))
		card.Sources = append(card.Sources, top.From, top.To)
	}

	if prev != nil {
		card.Stats.EntryDelta = dist.EntryCount - prev.EntryCount
		card.Stats.WordsDelta = dist.MagnitudeProxy - prev.MagnitudeProxy
		card.Highlights = append(card.Highlights, yoyHighlight(card.Stats.EntryDelta))
	}

	return card
}

func yoyHighlight(entryDelta int) string {
	switch {
	case entryDelta > 0:
		return fmt.Sprintf("%d more entries than last year.", entryDelta)
	case entryDelta < 0:
		return fmt.Sprintf("%d fewer entries than last year.", -entryDelta)
	default:
		return "Exactly as many entries as last year."
	}
}
