package bridge

import (
	"github.com/mirrorwell/insight/pkg/insight/diag"
	"github.com/mirrorwell/insight/pkg/insight/lexical"
)

// Weights control the composite scoring formula
//
//	weight = seqW*seq + scaleW*scale + systemicW*lift + mediaW*media
//	       + (contrastW + reversalBoost)*contrast
//
// The values are empirically tuned; changing them changes which bridges
// exist, so they are configuration to preserve, not constants to improve.
type Weights struct {
	Sequence              float64 `yaml:"sequence"`
	Scale                 float64 `yaml:"scale"`
	Systemic              float64 `yaml:"systemic"`
	Media                 float64 `yaml:"media"`
	Contrast              float64 `yaml:"contrast"`
	SequenceDecayExponent float64 `yaml:"sequence_decay_exponent"`
	MinWeightThreshold    float64 `yaml:"min_weight_threshold"`
}

// DefaultWeights returns the tuned scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Sequence:              0.25,
		Scale:                 0.30,
		Systemic:              0.25,
		Media:                 0.20,
		Contrast:              0.30,
		SequenceDecayExponent: 1.35,
		MinWeightThreshold:    0.48,
	}
}

// reversalBoost is added to the contrast weight when an explicit belief
// reversal is detected.
const reversalBoost = 0.15

// withDefaults fills zero-valued fields from DefaultWeights, so callers can
// override a subset without restating the rest.
func (w Weights) withDefaults() Weights {
	def := DefaultWeights()
	if w.Sequence == 0 {
		w.Sequence = def.Sequence
	}
	if w.Scale == 0 {
		w.Scale = def.Scale
	}
	if w.Systemic == 0 {
		w.Systemic = def.Systemic
	}
	if w.Media == 0 {
		w.Media = def.Media
	}
	if w.Contrast == 0 {
		w.Contrast = def.Contrast
	}
	if w.SequenceDecayExponent == 0 {
		w.SequenceDecayExponent = def.SequenceDecayExponent
	}
	if w.MinWeightThreshold == 0 {
		w.MinWeightThreshold = def.MinWeightThreshold
	}
	return w
}

// Defaults for Options.
const (
	DefaultMaxDays = 14
	DefaultTopK    = 4
)

// Options configures a bridge run. The zero value means defaults.
type Options struct {
	MaxDays   int // pair window in days
	TopK      int // candidates kept per source entry before the pipeline
	Weights   Weights
	Tokenizer *lexical.Tokenizer // custom stopword config; default when nil
	Sink      diag.Sink          // diagnostics; discarded when nil
}

func (o Options) withDefaults() Options {
	if o.MaxDays <= 0 {
		o.MaxDays = DefaultMaxDays
	}
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	o.Weights = o.Weights.withDefaults()
	if o.Tokenizer == nil {
		o.Tokenizer = lexical.NewTokenizer()
	}
	o.Sink = diag.OrNop(o.Sink)
	return o
}
