package bridge

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func rec(id string, dayOffset int, text string) Record {
	return Record{ID: id, CreatedAt: baseTime.AddDate(0, 0, dayOffset), Text: text}
}

func scalePair() []Record {
	return []Record{
		rec("a", 0, "Reading about billions and crores moving through markets, everything at massive scale."),
		rec("b", 3, "At that scale systems behave differently than any person expects."),
	}
}

func TestBuild_ScaleSequenceBridge(t *testing.T) {
	got := Build(scalePair(), Options{})

	if len(got) != 1 {
		t.Fatalf("bridges = %d, want exactly 1", len(got))
	}
	b := got[0]
	if b.From != "a" || b.To != "b" {
		t.Errorf("direction = %s -> %s, want a -> b", b.From, b.To)
	}
	if b.Weight < 0.48 {
		t.Errorf("weight = %v, want >= 0.48", b.Weight)
	}
	hasScale, hasSeq := false, false
	for _, r := range b.Reasons {
		if r == ReasonScale {
			hasScale = true
		}
		if r == ReasonSequence {
			hasSeq = true
		}
	}
	if !hasScale || !hasSeq {
		t.Errorf("reasons = %v, want scale and sequence", b.Reasons)
	}
	if b.Signals.DaysApart != 3 {
		t.Errorf("days apart = %v, want 3", b.Signals.DaysApart)
	}
}

func TestBuild_BeyondMaxDays(t *testing.T) {
	records := []Record{
		rec("a", 0, "Reading about billions and crores moving through markets, everything at massive scale."),
		rec("b", 15, "At that scale systems behave differently than any person expects."),
	}
	if got := Build(records, Options{}); len(got) != 0 {
		t.Errorf("bridges = %d, want 0 beyond the pairing window", len(got))
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	records := mixedCorpus()
	first := Build(records, Options{})
	for i := 0; i < 3; i++ {
		again := Build(records, Options{})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	records := mixedCorpus()
	want := Build(records, Options{})
	wantHash := ContentHash(want)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(x, y int) {
			shuffled[x], shuffled[y] = shuffled[y], shuffled[x]
		})
		got := Build(shuffled, Options{})
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("shuffle %d changed output", i)
		}
		if ContentHash(got) != wantHash {
			t.Fatalf("shuffle %d changed content hash", i)
		}
	}
}

func TestBuild_AnchorInvariant(t *testing.T) {
	for _, b := range Build(mixedCorpus(), Options{}) {
		if b.AnchorA == "" || b.AnchorB == "" {
			t.Errorf("bridge %s->%s missing anchor", b.From, b.To)
		}
		if b.Quality != 1 {
			t.Errorf("bridge %s->%s quality = %v, want 1", b.From, b.To, b.Quality)
		}
		if b.IsFallback {
			t.Errorf("fallback bridge %s->%s survived the final filter", b.From, b.To)
		}
		if len(b.Reasons) == 0 {
			t.Errorf("bridge %s->%s has no reasons", b.From, b.To)
		}
	}
}

func TestBuild_EmptyTextYieldsNothing(t *testing.T) {
	records := []Record{
		rec("a", 0, ""),
		rec("b", 2, "At that scale systems behave differently than any person expects."),
		rec("c", 4, "   "),
	}
	if got := Build(records, Options{}); len(got) != 0 {
		t.Errorf("bridges = %d, want 0 for empty-text sources", len(got))
	}
}

func TestBuild_NoInput(t *testing.T) {
	if got := Build(nil, Options{}); len(got) != 0 {
		t.Errorf("bridges = %d, want 0", len(got))
	}
}

func TestEvidenceGate_RemovingAllSignalsRemovesPair(t *testing.T) {
	tok := Options{}.withDefaults().Tokenizer

	ev := gatherEvidence(tok, "alpha omega thinking", "entirely unrelated musing")
	if ev.any(0) {
		t.Errorf("no shared signal and seq 0 must fail the gate: %+v", ev)
	}
	if !ev.any(0.1) {
		t.Error("positive sequence score alone should pass the gate")
	}

	ev = gatherEvidence(tok, "quiet morning walk", "another morning walk note")
	if ev.SharedKeyword == "" {
		t.Errorf("expected shared keyword, got %+v", ev)
	}
}

func TestScorePair_DomainMismatchDampsSystemic(t *testing.T) {
	opts := Options{}.withDefaults()
	// both entries use systems language, but in unrelated specific domains
	a := rec("a", 0, "Parliament feels like a system feeding on incentives, billions moved election by election.")
	b := rec("b", 2, "Our deploy pipeline moves billions too, bugs create their own incentives.")

	days := 2.0
	cand, ok := scorePair(a, b, days, opts, map[string]struct{}{})
	if !ok {
		t.Fatal("expected a candidate")
	}
	if !cand.Signals.DomainMismatch {
		t.Error("expected domain mismatch flag")
	}

	// same pair, same domain: systemic contributes at full strength
	b2 := rec("b2", 2, "The ministry is a system too, regulation breeds its own incentives.")
	cand2, ok := scorePair(a, b2, days, opts, map[string]struct{}{})
	if !ok {
		t.Fatal("expected a candidate for matched domains")
	}
	if cand2.Signals.DomainMismatch {
		t.Error("matched domains must not flag mismatch")
	}
	if cand.Weight >= cand2.Weight {
		t.Errorf("mismatched weight %v should be below matched weight %v", cand.Weight, cand2.Weight)
	}
}

func TestBuild_TopKLimitsPerSource(t *testing.T) {
	// one source with many later partners, all bridge-worthy
	records := []Record{
		rec("src", 0, "Watching the finale, thinking about billions at massive scale."),
	}
	for i := 1; i <= 8; i++ {
		records = append(records, rec(
			string(rune('a'+i)), i,
			"Watched another episode about millions and massive scale again today."))
	}

	got := Build(records, Options{TopK: 2, MaxDays: 14})
	perSource := make(map[string]int)
	for _, b := range got {
		perSource[b.From]++
	}
	if perSource["src"] > 2 {
		t.Errorf("source kept %d candidates, want <= 2", perSource["src"])
	}
}

// mixedCorpus covers scale, media, systemic and contrast signals across
// several sources within the pairing window.
func mixedCorpus() []Record {
	return []Record{
		rec("e1", 0, "Reading about billions and crores moving through markets, everything at massive scale."),
		rec("e2", 2, "At that scale systems behave differently than any person expects."),
		rec("e3", 3, "Watched the season finale tonight, the show stuck with me."),
		rec("e4", 5, "Another episode, another evening watching the same series unfold."),
		rec("e5", 6, "I believed the project was doomed from the start."),
		rec("e6", 9, "I now think the project will outlive all of us."),
		rec("e7", 11, "The ministry announced new regulation, incentives shifting everywhere."),
		rec("e8", 12, "Feedback loops inside institutions fascinate me, systems all the way down."),
	}
}
