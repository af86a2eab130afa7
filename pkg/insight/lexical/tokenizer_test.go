package lexical

import (
	"reflect"
	"testing"
)

func TestTokenize_StopwordsAndCase(t *testing.T) {
	tok := NewTokenizer()

	got := tok.Tokenize("The systems were failing, and I noticed second-order effects.")
	want := []string{"systems", "failing", "noticed", "second-order", "effects"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_Empty(t *testing.T) {
	tok := NewTokenizer()
	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty text, got %v", got)
	}
	if got := tok.Tokenize("  ...  "); len(got) != 0 {
		t.Errorf("expected no tokens for punctuation-only text, got %v", got)
	}
}

func TestTokenize_ExtraStopwords(t *testing.T) {
	tok := NewTokenizer("gym")
	got := tok.Tokenize("gym again tonight")
	for _, w := range got {
		if w == "gym" {
			t.Errorf("extra stopword leaked through: %v", got)
		}
	}
}

func TestKeywords_LengthGateAndDedup(t *testing.T) {
	tok := NewTokenizer()
	got := tok.Keywords("the vast vast sky felt vast, big sky")
	want := []string{"vast", "felt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords = %v, want %v", got, want)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount empty = %d, want 0", got)
	}
}

func TestSharedAny(t *testing.T) {
	if _, ok := SharedAny([]string{"a", "b"}, []string{"c"}); ok {
		t.Error("expected no overlap")
	}
	if v, ok := SharedAny([]string{"a", "b"}, []string{"b"}); !ok || v != "b" {
		t.Errorf("expected overlap on b, got %q %v", v, ok)
	}
}
