package signals

import "testing"

func TestDomainMismatch_DifferentDomains(t *testing.T) {
	a := "The ministry pushed new legislation through parliament."
	b := "Spent the evening fixing bugs before the deploy."
	if !DomainMismatch(a, b) {
		t.Error("government vs code should mismatch")
	}
}

func TestDomainMismatch_SharedDomain(t *testing.T) {
	a := "Refactored the codebase, another deploy tonight."
	b := "The server fell over after my commit."
	if DomainMismatch(a, b) {
		t.Error("two code entries must not mismatch")
	}
}

func TestDomainMismatch_UnlistedDomainNeverDampens(t *testing.T) {
	a := "Baked sourdough all afternoon."
	b := "Repotted the ferns before the rain."
	if DomainMismatch(a, b) {
		t.Error("texts with no domain markers must not mismatch")
	}
}

func TestDomainsOf_StableOrder(t *testing.T) {
	text := "The gym near parliament has terrible wifi."
	first := DomainsOf(text)
	for i := 0; i < 10; i++ {
		again := DomainsOf(text)
		if len(again) != len(first) {
			t.Fatalf("unstable result length: %v vs %v", again, first)
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("unstable order: %v vs %v", again, first)
			}
		}
	}
}

func TestSystemicDamping(t *testing.T) {
	cases := []struct {
		name                     string
		mismatch, reversal, othc bool
		want                     float64
	}{
		{"none", false, false, false, 1.0},
		{"mismatch", true, false, false, 0.30},
		{"reversal", false, true, false, 0.20},
		{"other contrast", false, false, true, 0.50},
		{"mismatch and reversal", true, true, false, 0.06},
	}
	for _, tc := range cases {
		got := SystemicDamping(tc.mismatch, tc.reversal, tc.othc)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: SystemicDamping = %v, want %v", tc.name, got, tc.want)
		}
	}
}
