// Package signals detects the lexical signal families the bridge engine
// scores on: scale language, systemic language, media language, and contrast
// or belief-reversal language. Matchers are compiled once at package init and
// every function here is pure.
package signals

import (
	"regexp"
	"strings"
)

// Theme names the four signal families.
type Theme string

const (
	ThemeScale    Theme = "scale"
	ThemeSystemic Theme = "systemic"
	ThemeMedia    Theme = "media"
	ThemeContrast Theme = "contrast"
)

// maxHitsPerTheme caps the deduplicated hit list for each family.
const maxHitsPerTheme = 8

// Set is one compiled pattern family.
type Set struct {
	Theme    Theme
	patterns []*regexp.Regexp
}

var (
	scaleSet = &Set{Theme: ThemeScale, patterns: compileAll(
		`(?i)\b(billions?|millions?|trillions?|crores?|lakhs?|thousands?)\b`,
		`(?i)\b(massive|enormous|vast|huge)\s+(scale|numbers?|amounts?)\b`,
		`(?i)\bat\s+(that\s+)?scale\b`,
		`(?i)\border(s)?\s+of\s+magnitude\b`,
		`(?i)\b\d+(\.\d+)?\s*%`,
		`[$₹€£]\s?\d[\d,]*`,
		`(?i)\b\d+x\b`,
	)}

	systemicSet = &Set{Theme: ThemeSystemic, patterns: compileAll(
		`(?i)\bsystems?\b`,
		`(?i)\b(systemic|structural|institutions?|institutional)\b`,
		`(?i)\bfeedback\s+loops?\b`,
		`(?i)\bincentives?\b`,
		`(?i)\bsecond-order\b`,
		`(?i)\bemergent|emergence\b`,
		`(?i)\bbureaucra\w+\b`,
		`(?i)\bpolic(y|ies)\b`,
	)}

	mediaSet = &Set{Theme: ThemeMedia, patterns: compileAll(
		`(?i)\bwatch(ed|ing)?\b`,
		`(?i)\b(tv\s+)?(show|series|episode|season)s?\b`,
		`(?i)\b(movie|film|documentary)s?\b`,
		`(?i)\bbinge(d|-watch\w*)?\b`,
		`(?i)\btrailer\b`,
		`(?i)\bfinale\b`,
	)}

	contrastSet = &Set{Theme: ThemeContrast, patterns: compileAll(
		`(?i)\bused\s+to\s+(think|believe|feel)\b`,
		`(?i)\bzoom(ed|ing)?\s+out\b`,
		`(?i)\bon\s+the\s+other\s+hand\b`,
		`(?i)\bchanged\s+my\s+mind\b`,
		`(?i)\b(but|yet)\s+now\b`,
		`(?i)\bno\s+longer\b`,
		`(?i)\brealiz(e|ed|ing)\b`,
		`(?i)\bin\s+hindsight\b`,
	)}
)

// AllSets returns the four pattern families in scoring order.
func AllSets() []*Set {
	return []*Set{scaleSet, systemicSet, mediaSet, contrastSet}
}

// Find returns the deduplicated matches of the set in text, capped at
// maxHitsPerTheme, in order of first appearance.
func (s *Set) Find(text string) []string {
	var hits []string
	seen := make(map[string]struct{})
	for _, re := range s.patterns {
		for _, m := range re.FindAllString(text, -1) {
			key := strings.ToLower(strings.TrimSpace(m))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			hits = append(hits, strings.TrimSpace(m))
			if len(hits) >= maxHitsPerTheme {
				return hits
			}
		}
	}
	return hits
}

// Hits is the signal extraction result for a pair of texts.
type Hits struct {
	Scale    []string
	Systemic []string
	Media    []string
	Contrast []string
	Reversal bool
}

// Extract runs all four matchers over the union of the two texts and the
// belief-reversal detector across them.
func Extract(textA, textB string) Hits {
	combined := textA + "\n" + textB
	return Hits{
		Scale:    scaleSet.Find(combined),
		Systemic: systemicSet.Find(combined),
		Media:    mediaSet.Find(combined),
		Contrast: contrastSet.Find(combined),
		Reversal: DetectReversal(textA, textB),
	}
}

// Themes lists which families fired in the given text alone. The bridge
// evidence gate compares per-text theme tags, not the pair union.
func Themes(text string) []Theme {
	var out []Theme
	for _, set := range AllSets() {
		if len(set.Find(text)) > 0 {
			out = append(out, set.Theme)
		}
	}
	return out
}

var (
	beliefThen = regexp.MustCompile(`(?i)\bI\s+(believed|thought|used\s+to\s+(think|believe)|was\s+(sure|convinced))\b`)
	beliefNow  = regexp.MustCompile(`(?i)\b(I\s+now\s+(think|believe|see)|now\s+I\s+(think|believe|see)|no\s+longer\s+(think|believe)|don'?t\s+(think|believe)\s+that\s+anymore)\b`)
)

// DetectReversal reports an explicit "I believed X ... I now believe not-X"
// arc: a belief statement in either text paired with a revision statement,
// or both halves inside one text.
func DetectReversal(textA, textB string) bool {
	if beliefThen.MatchString(textA) && beliefNow.MatchString(textB) {
		return true
	}
	if beliefThen.MatchString(textB) && beliefNow.MatchString(textB) {
		return true
	}
	if beliefThen.MatchString(textA) && beliefNow.MatchString(textA) {
		return true
	}
	return false
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}
