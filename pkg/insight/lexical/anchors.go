package lexical

import "strings"

const (
	anchorMinWords = 2
	anchorMaxWords = 6
)

// AnchorPhrase extracts a 2-6 word phrase from text that can ground an
// explanation in the writer's own words. Preference order: a sentence
// fragment containing at least two non-stopword tokens, then the text of a
// pattern hit, then a capitalized phrase. Returns "" when the text offers
// nothing usable; callers treat that as a hard stop.
func (t *Tokenizer) AnchorPhrase(text string, hits []string) string {
	for _, sentence := range SplitSentences(text) {
		if frag := t.fragment(sentence); frag != "" {
			return frag
		}
	}

	for _, hit := range hits {
		if !containsFold(text, hit) {
			continue
		}
		if frag := clampWords(hit); frag != "" {
			return frag
		}
	}

	for _, ent := range CapitalizedEntities(text) {
		if words := strings.Fields(ent); len(words) >= anchorMinWords {
			return clampWords(ent)
		}
	}

	return ""
}

// fragment returns the first window of 2-6 words in the sentence carrying at
// least two non-stopword tokens.
func (t *Tokenizer) fragment(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) < anchorMinWords {
		return ""
	}
	for start := 0; start < len(words); start++ {
		end := start + anchorMaxWords
		if end > len(words) {
			end = len(words)
		}
		window := words[start:end]
		if len(window) < anchorMinWords {
			break
		}
		significant := 0
		for _, w := range window {
			trimmed := strings.Trim(strings.ToLower(w), ".,!?;:\"'()")
			if len(trimmed) > 1 && !t.IsStopword(trimmed) {
				significant++
			}
		}
		if significant >= 2 {
			return strings.Trim(strings.Join(window, " "), ".,!?;: ")
		}
	}
	return ""
}

// ConcreteToken picks one concrete word from the text to name it in an
// explanation: capitalized entities first, then pattern hits present in this
// text, then the longest significant token. Hits may come from a pair union;
// only the ones actually occurring in text are considered.
func (t *Tokenizer) ConcreteToken(text string, hits []string) string {
	if ents := CapitalizedEntities(text); len(ents) > 0 {
		return strings.Fields(ents[0])[0]
	}
	for _, hit := range hits {
		if !containsFold(text, hit) {
			continue
		}
		if fields := strings.Fields(hit); len(fields) > 0 {
			return strings.Trim(fields[0], ".,!?;:\"'()")
		}
	}
	longest := ""
	for _, tok := range t.Tokenize(text) {
		if len(tok) > len(longest) {
			longest = tok
		}
	}
	return longest
}

// SplitSentences breaks text on terminal punctuation and newlines. Empty
// segments are dropped.
func SplitSentences(text string) []string {
	var out []string
	var current strings.Builder
	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s != "" {
			out = append(out, s)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return out
}

func containsFold(text, sub string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}

func clampWords(s string) string {
	words := strings.Fields(strings.Trim(s, ".,!?;: "))
	if len(words) < anchorMinWords {
		return ""
	}
	if len(words) > anchorMaxWords {
		words = words[:anchorMaxWords]
	}
	return strings.Join(words, " ")
}
