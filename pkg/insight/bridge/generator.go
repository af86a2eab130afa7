package bridge

import (
	"math"
	"sort"
	"strings"

	"github.com/mirrorwell/insight/pkg/insight/signals"
)

// Build generates the final filtered bridge set for the given records.
// Records are sorted internally by creation time, so input order never
// affects output. The function is total: malformed or empty text yields no
// bridges, never an error.
func Build(records []Record, opts Options) []Bridge {
	opts = opts.withDefaults()

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	seenExplanations := make(map[string]struct{})
	var candidates []Bridge

	for i := 0; i < len(sorted); i++ {
		a := sorted[i]
		if strings.TrimSpace(a.Text) == "" {
			continue
		}

		var forA []Bridge
		for j := i + 1; j < len(sorted); j++ {
			b := sorted[j]
			days := b.CreatedAt.Sub(a.CreatedAt).Hours() / 24
			if days > float64(opts.MaxDays) {
				// records are chronological; nothing later can be closer
				break
			}
			if strings.TrimSpace(b.Text) == "" {
				continue
			}
			if cand, ok := scorePair(a, b, days, opts, seenExplanations); ok {
				forA = append(forA, cand)
			}
		}

		sort.SliceStable(forA, func(x, y int) bool {
			if forA[x].Weight != forA[y].Weight {
				return forA[x].Weight > forA[y].Weight
			}
			return forA[x].To < forA[y].To
		})
		if len(forA) > opts.TopK {
			forA = forA[:opts.TopK]
		}
		candidates = append(candidates, forA...)
	}

	final := runPipeline(candidates)
	opts.Sink.Debugf("bridge: %d candidates, %d final, content hash %x",
		len(candidates), len(final), ContentHash(final))
	return final
}

// scorePair evaluates one ordered pair. Returns false when the pair fails
// the evidence gate, the weight threshold, or the anchor requirement.
func scorePair(a, b Record, days float64, opts Options, seenExplanations map[string]struct{}) (Bridge, bool) {
	hits := signals.Extract(a.Text, b.Text)
	mismatch := signals.DomainMismatch(a.Text, b.Text)
	otherContrast := len(hits.Contrast) > 0 && !hits.Reversal

	seq := clamp01(math.Pow(1-days/float64(opts.MaxDays), opts.Weights.SequenceDecayExponent))

	ev := gatherEvidence(opts.Tokenizer, a.Text, b.Text)
	if !ev.any(seq) {
		return Bridge{}, false
	}

	var scaleCarry, systemicLift, mediaBridge, contrast float64
	if len(hits.Scale) > 0 {
		scaleCarry = 1
	}
	if len(hits.Systemic) > 0 {
		systemicLift = signals.SystemicDamping(mismatch, hits.Reversal, otherContrast)
	}
	if len(hits.Media) > 0 {
		mediaBridge = 1
	}
	if len(hits.Contrast) > 0 || hits.Reversal {
		contrast = 1
	}

	contrastWeight := opts.Weights.Contrast
	if hits.Reversal {
		contrastWeight += reversalBoost
	}

	w := opts.Weights.Sequence*seq +
		opts.Weights.Scale*scaleCarry +
		opts.Weights.Systemic*systemicLift +
		opts.Weights.Media*mediaBridge +
		contrastWeight*contrast
	w = clamp01(w)
	if w < opts.Weights.MinWeightThreshold {
		return Bridge{}, false
	}

	anchorA := opts.Tokenizer.AnchorPhrase(a.Text, allHits(hits))
	anchorB := opts.Tokenizer.AnchorPhrase(b.Text, allHits(hits))
	if anchorA == "" || anchorB == "" {
		// anchors are a correctness requirement, not a quality heuristic
		return Bridge{}, false
	}

	tokA := opts.Tokenizer.ConcreteToken(a.Text, allHits(hits))
	tokB := opts.Tokenizer.ConcreteToken(b.Text, allHits(hits))
	pairKey := a.ID + "->" + b.ID

	explanation, fallback := synthesize(hits, tokA, tokB, pairKey)
	norm := normalizeExplanation(explanation)
	if _, dup := seenExplanations[norm]; dup {
		explanation, fallback = resynthesize(hits, tokA, tokB, pairKey)
		norm = normalizeExplanation(explanation)
	}
	seenExplanations[norm] = struct{}{}

	bridge := Bridge{
		From:        a.ID,
		To:          b.ID,
		Weight:      w,
		Explanation: explanation,
		AnchorA:     anchorA,
		AnchorB:     anchorB,
		Quality:     1,
		IsFallback:  fallback,
		Signals: SignalDetail{
			Scale:          hits.Scale,
			Systemic:       hits.Systemic,
			Media:          hits.Media,
			Contrast:       hits.Contrast,
			DaysApart:      days,
			Reversal:       hits.Reversal,
			DomainMismatch: mismatch,
		},
	}

	if seq > 0 {
		bridge.Reasons = append(bridge.Reasons, ReasonSequence)
	}
	if scaleCarry > 0 {
		bridge.Reasons = append(bridge.Reasons, ReasonScale)
	}
	if systemicLift > 0 {
		bridge.Reasons = append(bridge.Reasons, ReasonSystemic)
	}
	if contrast > 0 {
		bridge.Reasons = append(bridge.Reasons, ReasonContrast)
	}
	if mediaBridge > 0 {
		bridge.Reasons = append(bridge.Reasons, ReasonMedia)
	}

	return bridge, true
}

func allHits(h signals.Hits) []string {
	out := make([]string, 0, len(h.Scale)+len(h.Systemic)+len(h.Media)+len(h.Contrast))
	out = append(out, h.Contrast...)
	out = append(out, h.Scale...)
	out = append(out, h.Media...)
	out = append(out, h.Systemic...)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
