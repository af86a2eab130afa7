// Package insight is the facade over the journal insights engines: the
// distribution classifier and the narrative bridge generator. An Engine is
// cheap, immutable after construction, and safe for concurrent use; every
// method is a pure function of its arguments plus the configured weights.
package insight

import (
	"time"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/cards"
	"github.com/mirrorwell/insight/pkg/insight/diag"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
	"github.com/mirrorwell/insight/pkg/insight/entry"
	"github.com/mirrorwell/insight/pkg/insight/lexical"
)

// Engine bundles the tuned configuration shared by the analysis surfaces.
type Engine struct {
	tokenizer  *lexical.Tokenizer
	weights    bridge.Weights
	thresholds distribution.Thresholds
	sink       diag.Sink
	builder    *cards.Builder
}

// Options configures an Engine. Zero values mean defaults.
type Options struct {
	Tokenizer  *lexical.Tokenizer
	Weights    bridge.Weights
	Thresholds *distribution.Thresholds
	Sink       diag.Sink
}

// New creates an Engine.
func New(opts Options) *Engine {
	tok := opts.Tokenizer
	if tok == nil {
		tok = lexical.NewTokenizer()
	}
	th := distribution.DefaultThresholds()
	if opts.Thresholds != nil {
		th = *opts.Thresholds
	}
	return &Engine{
		tokenizer:  tok,
		weights:    opts.Weights,
		thresholds: th,
		sink:       diag.OrNop(opts.Sink),
		builder:    cards.New(),
	}
}

// ComputeDistribution summarizes the window ending at now. A zero now means
// the current time.
func (e *Engine) ComputeDistribution(entries []entry.Entry, windowDays int, now time.Time) distribution.WindowDistribution {
	return distribution.ComputeDetailed(entries, distribution.DetailedOptions{
		WindowDays: windowDays,
		Now:        now,
		Thresholds: &e.thresholds,
	}).WindowDistribution
}

// ComputeDistributionDetailed returns the richer result with daily counts,
// top days, and the stats block.
func (e *Engine) ComputeDistributionDetailed(entries []entry.Entry, opts distribution.DetailedOptions) distribution.DistributionResult {
	if opts.Thresholds == nil {
		opts.Thresholds = &e.thresholds
	}
	return distribution.ComputeDetailed(entries, opts)
}

// BuildBridges generates the final filtered narrative bridge set. Deleted
// entries are excluded before pairing.
func (e *Engine) BuildBridges(entries []entry.Entry, opts bridge.Options) []bridge.Bridge {
	if opts.Tokenizer == nil {
		opts.Tokenizer = e.tokenizer
	}
	if opts.Sink == nil {
		opts.Sink = e.sink
	}
	zero := bridge.Weights{}
	if opts.Weights == zero {
		opts.Weights = e.weights
	}

	active := entry.Active(entries)
	records := make([]bridge.Record, len(active))
	for i, en := range active {
		records[i] = bridge.Record{ID: en.ID, CreatedAt: en.CreatedAt, Text: en.Plaintext}
	}
	return bridge.Build(records, opts)
}

// YearlyWrap builds the shareable wrap card for the 365-day window ending at
// now, comparing against the year before when prior entries exist there.
func (e *Engine) YearlyWrap(entries []entry.Entry, now time.Time) cards.WrapCard {
	if now.IsZero() {
		now = time.Now()
	}
	dist := e.ComputeDistributionDetailed(entries, distribution.DetailedOptions{
		WindowDays: 365,
		Now:        now,
	})
	bridges := e.BuildBridges(entries, bridge.Options{})

	var prev *distribution.DistributionResult
	prevDist := e.ComputeDistributionDetailed(entries, distribution.DetailedOptions{
		WindowDays: 365,
		Now:        now.AddDate(-1, 0, 0),
	})
	if prevDist.EntryCount > 0 {
		prev = &prevDist
	}

	return e.builder.BuildYearlyWrap(now.Year(), dist, bridges, prev)
}
