package bridge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mirrorwell/insight/pkg/insight/signals"
)

// Sentence frames for explanation synthesis. Each frame has several
// paraphrase variants; the variant is chosen by a stable hash of the pair
// key, so the same pair always phrases itself the same way while different
// pairs avoid robotic repetition.
var (
	reversalFrames = []string{
		"An earlier conviction around %s reads differently after %s.",
		"What %s asserted, %s walks back.",
		"The belief voiced near %s gets revised by the time %s appears.",
	}
	contrastFrames = []string{
		"Where %s framed things one way, %s reads like the zoomed-out view.",
		"The perspective around %s shifts by the time %s comes up.",
		"%s and %s sit on opposite sides of a change in view.",
	}
	scaleFrames = []string{
		"The scale language around %s carries into %s.",
		"Both entries think in large numbers, from %s through %s.",
		"%s sets up the magnitude that %s returns to.",
	}
	mediaFrames = []string{
		"Something watched around %s echoes into %s.",
		"The viewing thread from %s continues at %s.",
		"%s and %s share a screen-time thread.",
	}
	systemicFrames = []string{
		"The systems thinking near %s resurfaces with %s.",
		"Both entries reach for structural language, from %s to %s.",
		"%s and %s circle the same institutional pattern.",
	}
	sequenceFrames = []string{
		"Written days apart, %s leads naturally into %s.",
		"The thread from %s picks up again at %s.",
	}
)

// alternateFrames is the collision-regeneration table, keyed by the active
// signal flags. When a synthesized explanation collides with one already
// produced in the run, the pair re-phrases through here instead.
var alternateFrames = map[string][]string{
	"contrast": {
		"Seen together, %s and %s mark a turn in how things looked.",
		"The ground shifts between %s and %s.",
	},
	"scale": {
		"Magnitude is the through-line between %s and %s.",
		"%s and %s both reckon with size.",
	},
	"media": {
		"What was on screen links %s with %s.",
		"A show ties %s to %s.",
	},
	"systemic": {
		"Structure is the common thread from %s to %s.",
		"%s and %s both step back to the system view.",
	},
	"sequence": {
		"%s and %s read as consecutive beats of one thought.",
	},
}

// fallbackExplanations are the generic placeholder sentences. A bridge whose
// final text lands here is marked IsFallback and filtered from output.
var fallbackExplanations = []string{
	"These entries appear connected.",
	"One entry seems to follow from the other.",
	"There is a thread between these entries.",
}

var fallbackSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(fallbackExplanations))
	for _, s := range fallbackExplanations {
		set[normalizeExplanation(s)] = struct{}{}
	}
	return set
}()

var prescriptiveRe = regexp.MustCompile(`(?i)\byou\s+(should|must|will)\b`)

// synthesize builds the explanation sentence for a pair from whichever
// signals fired, in fixed priority order. tokA and tokB are the concrete
// grounding tokens extracted from each side.
func synthesize(h signals.Hits, tokA, tokB, pairKey string) (string, bool) {
	frames, frameName := selectFrames(h)
	if frames == nil {
		return pick(fallbackExplanations, pairKey), true
	}
	text := fmt.Sprintf(pick(frames, pairKey+frameName), tokA, tokB)
	text = sanitize(text)
	return text, isFallbackText(text)
}

// resynthesize re-phrases a colliding explanation via the alternate framing
// table for the bridge's primary signal.
func resynthesize(h signals.Hits, tokA, tokB, pairKey string) (string, bool) {
	_, frameName := selectFrames(h)
	if frameName == "" {
		frameName = "sequence"
	}
	alts := alternateFrames[frameName]
	if len(alts) == 0 {
		alts = alternateFrames["sequence"]
	}
	text := sanitize(fmt.Sprintf(pick(alts, pairKey+"alt"+frameName), tokA, tokB))
	return text, isFallbackText(text)
}

// selectFrames applies the fixed priority: contrast first, then scale, then
// media, then systemic only when no contrast fired.
func selectFrames(h signals.Hits) ([]string, string) {
	switch {
	case h.Reversal:
		return reversalFrames, "contrast"
	case len(h.Contrast) > 0:
		return contrastFrames, "contrast"
	case len(h.Scale) > 0:
		return scaleFrames, "scale"
	case len(h.Media) > 0:
		return mediaFrames, "media"
	case len(h.Systemic) > 0:
		return systemicFrames, "systemic"
	default:
		return sequenceFrames, "sequence"
	}
}

// sanitize rewrites prescriptive or future-tense second-person phrasing into
// an observational register. The engine describes writing; it does not give
// advice.
func sanitize(text string) string {
	return prescriptiveRe.ReplaceAllString(text, "the writing seems to")
}

func isFallbackText(text string) bool {
	_, ok := fallbackSet[normalizeExplanation(text)]
	return ok
}

// normalizeExplanation lowercases and strips punctuation so dedupe compares
// phrasing, not formatting.
func normalizeExplanation(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// explanationWords returns the normalized word set for Jaccard dedupe.
func explanationWords(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(normalizeExplanation(text)) {
		set[w] = struct{}{}
	}
	return set
}

// jaccard computes word-set overlap between two explanations.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
