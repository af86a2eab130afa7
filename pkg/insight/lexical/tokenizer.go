// Package lexical provides the text substrate shared by the distribution and
// bridge engines: tokenization, stopword filtering, capitalized-entity
// extraction, and anchor-phrase selection. Everything here is pure and
// allocation-local; the same input always yields the same output.
package lexical

import (
	"strings"
	"unicode"
)

// Tokenizer splits journal text into normalized tokens.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the default stopword list plus any
// extra words supplied by configuration.
func NewTokenizer(extra ...string) *Tokenizer {
	return &Tokenizer{stopwords: NewStopwordSet(extra...)}
}

// Tokenize splits text into lowercase tokens, removing stopwords and
// single-character fragments. Hyphenated and apostrophe-joined words survive
// as one token ("second-order", "didn't" -> "didnt").
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		word = strings.Trim(word, "-")
		if len(word) <= 1 {
			return
		}
		if _, stop := t.stopwords[word]; stop {
			return
		}
		tokens = append(tokens, word)
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-':
			current.WriteRune(unicode.ToLower(r))
		case r == '\'':
			// drop apostrophes inside words
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// Keywords returns the deduplicated tokens longer than three characters, the
// overlap currency used by the bridge evidence gate.
func (t *Tokenizer) Keywords(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range t.Tokenize(text) {
		if len(tok) <= 3 {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// IsStopword reports whether the word is on the tokenizer's stopword list.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// WordCount counts whitespace-separated words. Used as the magnitude proxy
// in the distribution classifier, so it deliberately does not tokenize or
// filter anything.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SharedAny reports whether the two slices share at least one element.
func SharedAny(a, b []string) (string, bool) {
	if len(a) == 0 || len(b) == 0 {
		return "", false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return s, true
		}
	}
	return "", false
}
