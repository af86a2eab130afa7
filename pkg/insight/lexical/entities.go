package lexical

import (
	"strings"
	"unicode"
)

// CapitalizedEntities returns the distinct capitalized words and runs of
// capitalized words found mid-sentence. Words that open a sentence are
// skipped, which keeps ordinary sentence case from masquerading as a proper
// noun.
func CapitalizedEntities(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(phrase string) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) < 3 {
			return
		}
		key := strings.ToLower(phrase)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, phrase)
	}

	words := strings.Fields(text)
	sentenceStart := true
	var run []string
	for _, raw := range words {
		word := strings.TrimFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		capitalized := isCapitalized(word)
		if capitalized && !sentenceStart {
			run = append(run, word)
		} else {
			if len(run) > 0 {
				add(strings.Join(run, " "))
				run = run[:0]
			}
		}
		sentenceStart = endsClause(raw)
	}
	if len(run) > 0 {
		add(strings.Join(run, " "))
	}

	return out
}

// SharedEntities returns entities present in both texts, compared
// case-insensitively.
func SharedEntities(a, b string) []string {
	entsA := CapitalizedEntities(a)
	entsB := CapitalizedEntities(b)
	if len(entsA) == 0 || len(entsB) == 0 {
		return nil
	}
	setB := make(map[string]struct{}, len(entsB))
	for _, e := range entsB {
		setB[strings.ToLower(e)] = struct{}{}
	}
	var shared []string
	for _, e := range entsA {
		if _, ok := setB[strings.ToLower(e)]; ok {
			shared = append(shared, e)
		}
	}
	return shared
}

func isCapitalized(word string) bool {
	if len(word) < 2 {
		return false
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	// all-caps tokens ("TODO", "OK") are shouting, not entities
	for _, r := range runes[1:] {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func endsClause(raw string) bool {
	if raw == "" {
		return true
	}
	switch raw[len(raw)-1] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}
