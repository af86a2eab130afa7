package lexical

import "strings"

// DefaultStopwords is the built-in English stopword list. Journal text is
// conversational, so the list leans on function words and the fillers that
// dominate first-person writing ("really", "just", "today").
var DefaultStopwords = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being",
	"below", "between", "both", "but", "by", "can", "could", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "him", "his",
	"how", "i", "if", "in", "into", "is", "it", "its", "just", "like", "me",
	"more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off",
	"on", "once", "only", "or", "other", "our", "out", "over", "own",
	"really", "same", "she", "so", "some", "such", "than", "that", "the",
	"their", "them", "then", "there", "these", "they", "this", "those",
	"through", "to", "today", "too", "under", "until", "up", "very", "was",
	"we", "were", "what", "when", "where", "which", "while", "who", "whom",
	"why", "will", "with", "would", "you", "your", "yours",
}

// NewStopwordSet builds a lookup set from the given words plus the defaults.
func NewStopwordSet(extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultStopwords)+len(extra))
	for _, w := range DefaultStopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range extra {
		if w == "" {
			continue
		}
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
