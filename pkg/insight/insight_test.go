package insight

import (
	"testing"
	"time"

	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
	"github.com/mirrorwell/insight/pkg/insight/entry"
)

var wrapNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func journalEntry(id string, daysAgo int, text string) entry.Entry {
	return entry.Entry{
		ID:        id,
		CreatedAt: wrapNow.AddDate(0, 0, -daysAgo),
		Plaintext: text,
	}
}

func TestEngine_ComputeDistribution(t *testing.T) {
	e := New(Options{})
	var entries []entry.Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, journalEntry(
			string(rune('a'+i)), i*2, "a short daily note about the morning walk"))
	}

	got := e.ComputeDistribution(entries, 30, wrapNow)
	if got.WindowDays != 30 {
		t.Errorf("WindowDays = %d", got.WindowDays)
	}
	if got.EntryCount != 10 {
		t.Errorf("EntryCount = %d, want 10", got.EntryCount)
	}
	if got.Classification == "" {
		t.Error("no classification assigned")
	}
	if got.Explanation == "" {
		t.Error("no explanation produced")
	}
}

func TestEngine_BuildBridgesExcludesDeleted(t *testing.T) {
	e := New(Options{})
	a := journalEntry("a", 5, "Reading about billions and crores moving through markets, everything at massive scale.")
	b := journalEntry("b", 2, "My savings app shows hundreds, the news shows billions. Thinking about what a billion even means at that scale.")

	withBoth := e.BuildBridges([]entry.Entry{a, b}, bridge.Options{})
	if len(withBoth) == 0 {
		t.Fatal("expected at least one bridge from the live pair")
	}

	deletedAt := wrapNow
	b.DeletedAt = &deletedAt
	withDeleted := e.BuildBridges([]entry.Entry{a, b}, bridge.Options{})
	if len(withDeleted) != 0 {
		t.Errorf("deleted entry still produced %d bridges", len(withDeleted))
	}
}

func TestEngine_CustomThresholds(t *testing.T) {
	// an absurdly low powerlaw bar reclassifies everything bursty
	th := distribution.DefaultThresholds()
	th.PowerlawConcentration = 0.0
	e := New(Options{Thresholds: &th})

	entries := []entry.Entry{
		journalEntry("a", 1, "one"),
		journalEntry("b", 1, "two"),
		journalEntry("c", 20, "three"),
	}
	got := e.ComputeDistribution(entries, 30, wrapNow)
	if got.Classification != distribution.ClassPowerlaw {
		t.Errorf("Classification = %s, want powerlaw under zeroed threshold", got.Classification)
	}
}

func TestEngine_YearlyWrap(t *testing.T) {
	e := New(Options{})
	var entries []entry.Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, journalEntry(
			"cur-"+string(rune('a'+i)), 10+i*30, "a note about the morning walk and coffee"))
	}
	// prior-year activity so the card carries deltas
	for i := 0; i < 3; i++ {
		entries = append(entries, journalEntry(
			"old-"+string(rune('a'+i)), 400+i*30, "an older note from a previous season"))
	}

	card := e.YearlyWrap(entries, wrapNow)
	if card.Year != 2026 {
		t.Errorf("Year = %d", card.Year)
	}
	if card.Stats.EntryCount != 6 {
		t.Errorf("EntryCount = %d, want the 6 current-year entries", card.Stats.EntryCount)
	}
	if card.Stats.EntryDelta != 3 {
		t.Errorf("EntryDelta = %d, want 3", card.Stats.EntryDelta)
	}
	if len(card.Highlights) == 0 {
		t.Error("card has no highlights")
	}
}
