package bridge

import (
	"math"
	"testing"
)

func cand(from, to string, r Reason, weight float64, explanation string) Bridge {
	return Bridge{
		From:        from,
		To:          to,
		Weight:      weight,
		Reasons:     []Reason{r},
		Explanation: explanation,
		AnchorA:     "earlier phrase here",
		AnchorB:     "later phrase here",
		Quality:     1,
	}
}

func TestRebalanceTypes_ShareCap(t *testing.T) {
	// Six scale candidates from two sources drown out everything else:
	// 6 of 12 is a 50% share, over the cap.
	var in []Bridge
	for _, to := range []string{"t1", "t2", "t3"} {
		in = append(in, cand("s1", to, ReasonScale, 0.6, "scale one "+to))
		in = append(in, cand("s2", to, ReasonScale, 0.6, "scale two "+to))
	}
	in = append(in,
		cand("m1", "t4", ReasonMedia, 0.5, "media alpha"),
		cand("m2", "t5", ReasonMedia, 0.5, "media beta"),
		cand("y1", "t6", ReasonSystemic, 0.5, "systemic alpha"),
		cand("y2", "t7", ReasonSystemic, 0.5, "systemic beta"),
		cand("c1", "t8", ReasonContrast, 0.5, "contrast alpha"),
		cand("c2", "t9", ReasonContrast, 0.5, "contrast beta"),
	)

	out := rebalanceTypes(in)

	scale, total := 0, len(out)
	for _, b := range out {
		if b.PrimaryReason() == ReasonScale {
			scale++
		}
	}
	if total == 0 {
		t.Fatal("rebalance dropped everything")
	}
	if share := float64(scale) / float64(total); share > balanceShareCap+1e-9 {
		t.Errorf("scale share %v exceeds cap %v (kept %d of %d)", share, balanceShareCap, scale, total)
	}
	// the six non-scale candidates were never overrepresented and all survive
	if total-scale != 6 {
		t.Errorf("expected all 6 non-scale candidates kept, got %d", total-scale)
	}
	// penalized scale weights come out lower than the incoming 0.6
	for _, b := range out {
		if b.PrimaryReason() == ReasonScale && b.Weight >= 0.6 {
			t.Errorf("scale candidate %s->%s kept unpenalized weight %v", b.From, b.To, b.Weight)
		}
	}
}

func TestRebalanceTypes_BoostsUnderrepresented(t *testing.T) {
	var in []Bridge
	for _, to := range []string{"t1", "t2", "t3", "t4", "t5"} {
		in = append(in, cand("s", to, ReasonScale, 0.6, "scale filler "+to))
	}
	in = append(in, cand("m", "t6", ReasonMedia, 0.5, "lone media bridge"))

	out := rebalanceTypes(in)
	found := false
	for _, b := range out {
		if b.PrimaryReason() == ReasonMedia {
			found = true
			if math.Abs(b.Weight-0.5*balanceBoost) > 1e-9 {
				t.Errorf("media weight = %v, want %v", b.Weight, 0.5*balanceBoost)
			}
		}
	}
	if !found {
		t.Fatal("underrepresented media candidate was dropped")
	}
}

func TestRebalanceTypes_SourceFloor(t *testing.T) {
	// Source x brings only overrepresented scale candidates. The greedy pass
	// would reject them all; the floor restores half of x's list.
	in := []Bridge{
		cand("x", "t1", ReasonScale, 0.6, "scale a"),
		cand("x", "t2", ReasonScale, 0.6, "scale b"),
		cand("x", "t3", ReasonScale, 0.6, "scale c"),
		cand("x", "t4", ReasonScale, 0.6, "scale d"),
		cand("y", "t5", ReasonMedia, 0.9, "media anchor"),
	}

	out := rebalanceTypes(in)
	fromX := 0
	for _, b := range out {
		if b.From == "x" {
			fromX++
		}
	}
	if fromX != 2 {
		t.Errorf("source x kept %d bridges, want floor of 2", fromX)
	}
}

func TestRebalanceTypes_NoopWhenBalanced(t *testing.T) {
	in := []Bridge{
		cand("a", "t1", ReasonScale, 0.6, "scale one"),
		cand("b", "t2", ReasonMedia, 0.6, "media one"),
		cand("c", "t3", ReasonSystemic, 0.6, "systemic one"),
	}
	out := rebalanceTypes(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i, b := range out {
		if b.Weight != in[i].Weight {
			t.Errorf("weight %d changed from %v to %v", i, in[i].Weight, b.Weight)
		}
	}
}

func TestApplyGuardrails_ConfidenceFloor(t *testing.T) {
	in := []Bridge{
		cand("a", "b", ReasonScale, 0.39, "just below the floor"),
		cand("a", "c", ReasonScale, 0.40, "exactly at the floor"),
	}
	out := applyGuardrails(in)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].To != "c" {
		t.Errorf("kept %s->%s, want the at-floor candidate", out[0].From, out[0].To)
	}
}

func TestApplyGuardrails_PairTypeCap(t *testing.T) {
	// Five bridges on the same undirected pair and type; only the three
	// heaviest survive.
	in := []Bridge{
		cand("a", "b", ReasonScale, 0.50, "variant alpha numbers"),
		cand("a", "b", ReasonScale, 0.60, "variant beta magnitude"),
		cand("a", "b", ReasonScale, 0.70, "variant gamma billions"),
		cand("a", "b", ReasonScale, 0.80, "variant delta millions"),
		cand("a", "b", ReasonScale, 0.90, "variant epsilon crores"),
	}
	out := applyGuardrails(in)
	if len(out) != pairTypeCap {
		t.Fatalf("len = %d, want %d", len(out), pairTypeCap)
	}
	for _, b := range out {
		if b.Weight < 0.70 {
			t.Errorf("kept weight %v, lighter than the dropped candidates", b.Weight)
		}
	}
}

func TestApplyGuardrails_DedupSimilarExplanations(t *testing.T) {
	in := []Bridge{
		cand("a", "b", ReasonScale, 0.70, "The scale language around billions carries into markets."),
		cand("a", "b", ReasonScale, 0.60, "The scale language around billions carries into markets."),
		cand("a", "b", ReasonScale, 0.50, "Something entirely different about institutional structure."),
	}
	out := applyGuardrails(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Weight != 0.70 {
		t.Errorf("duplicate dedupe kept weight %v, want the heavier 0.70", out[0].Weight)
	}
}

func TestCapPerSource(t *testing.T) {
	var in []Bridge
	for _, to := range []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"} {
		in = append(in, cand("src", to, ReasonScale, 0.6, "scale toward "+to))
	}
	in = append(in, cand("src", "t8", ReasonMedia, 0.6, "media is a separate bucket"))

	out := capPerSource(in)
	scale, media := 0, 0
	for _, b := range out {
		switch b.PrimaryReason() {
		case ReasonScale:
			scale++
		case ReasonMedia:
			media++
		}
	}
	if scale != perSourceTypeCap {
		t.Errorf("scale bridges from src = %d, want %d", scale, perSourceTypeCap)
	}
	if media != 1 {
		t.Errorf("media bridges from src = %d, want 1", media)
	}
}

func TestFinalFilter(t *testing.T) {
	good := cand("a", "b", ReasonScale, 0.6, "a grounded explanation")

	fallback := good
	fallback.To = "c"
	fallback.IsFallback = true

	lowQuality := good
	lowQuality.To = "d"
	lowQuality.Quality = 0

	noAnchor := good
	noAnchor.To = "e"
	noAnchor.AnchorB = ""

	out := finalFilter([]Bridge{good, fallback, lowQuality, noAnchor})
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].To != "b" {
		t.Errorf("kept %s->%s, want the clean candidate", out[0].From, out[0].To)
	}
}

func TestRunPipeline_SortsByWeightDescending(t *testing.T) {
	in := []Bridge{
		cand("a", "t1", ReasonScale, 0.55, "scale first"),
		cand("b", "t2", ReasonMedia, 0.85, "media second"),
		cand("c", "t3", ReasonSystemic, 0.70, "systemic third"),
	}
	out := runPipeline(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Weight > out[i-1].Weight {
			t.Errorf("output not sorted by weight: %v before %v", out[i-1].Weight, out[i].Weight)
		}
	}
}
