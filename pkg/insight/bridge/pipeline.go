package bridge

import "sort"

// Quality pipeline constants.
const (
	balanceShareCap   = 0.40 // max share for a single reason type
	balanceUnderShare = 0.20 // types below this get boosted
	balancePenalty    = 0.70
	balanceBoost      = 1.05
	sourceKeepFloor   = 0.5 // never drop below this share of a source's list

	pairTypeCap      = 3    // bridges per undirected-pair+type key
	confidenceFloor  = 0.40 // absolute weight floor
	jaccardCeiling   = 0.7  // explanation similarity ceiling within a group
	perSourceTypeCap = 5    // bridges per source entry per reason type
)

// runPipeline applies type balancing, quality guardrails, per-source caps,
// and the final filter to the full candidate set.
func runPipeline(candidates []Bridge) []Bridge {
	out := rebalanceTypes(candidates)
	out = applyGuardrails(out)
	out = capPerSource(out)
	out = finalFilter(out)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// rebalanceTypes checks the reason-type distribution. When one type exceeds
// the share cap, its candidates are penalized and underrepresented types
// boosted, then candidates are re-selected under the cap. Each source entry
// always keeps at least half of the list it brought in.
func rebalanceTypes(candidates []Bridge) []Bridge {
	if len(candidates) == 0 {
		return candidates
	}

	typeCounts := make(map[Reason]int)
	sourceIn := make(map[string]int)
	for _, b := range candidates {
		typeCounts[b.PrimaryReason()]++
		sourceIn[b.From]++
	}

	total := float64(len(candidates))
	overrepresented := make(map[Reason]bool)
	anyOver := false
	for r, n := range typeCounts {
		if float64(n)/total > balanceShareCap {
			overrepresented[r] = true
			anyOver = true
		}
	}
	if !anyOver {
		return candidates
	}

	adjusted := make([]Bridge, len(candidates))
	copy(adjusted, candidates)
	for i := range adjusted {
		r := adjusted[i].PrimaryReason()
		switch {
		case overrepresented[r]:
			adjusted[i].Weight = clamp01(adjusted[i].Weight * balancePenalty)
		case float64(typeCounts[r])/total < balanceUnderShare:
			adjusted[i].Weight = clamp01(adjusted[i].Weight * balanceBoost)
		}
	}

	order := make([]int, len(adjusted))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		a, b := adjusted[order[x]], adjusted[order[y]]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	// Greedy re-selection: a candidate of an overrepresented type is only
	// kept while keeping it leaves that type at or under the share cap of
	// the selection so far.
	kept := make([]bool, len(adjusted))
	keptPerType := make(map[Reason]int)
	keptPerSource := make(map[string]int)
	keptTotal := 0
	for _, idx := range order {
		b := adjusted[idx]
		r := b.PrimaryReason()
		if overrepresented[r] {
			share := float64(keptPerType[r]+1) / float64(keptTotal+1)
			if share > balanceShareCap {
				continue
			}
		}
		kept[idx] = true
		keptPerType[r]++
		keptPerSource[b.From]++
		keptTotal++
	}

	// Source floor: restore the highest-weight rejected candidates of any
	// source that fell below half its incoming list.
	for _, idx := range order {
		b := adjusted[idx]
		if kept[idx] {
			continue
		}
		floor := int(sourceKeepFloor * float64(sourceIn[b.From]))
		if floor < 1 {
			floor = 1
		}
		if keptPerSource[b.From] < floor {
			kept[idx] = true
			keptPerSource[b.From]++
		}
	}

	out := make([]Bridge, 0, len(adjusted))
	for i, b := range adjusted {
		if kept[i] {
			out = append(out, b)
		}
	}
	return out
}

// applyGuardrails enforces the per-key cap, the absolute confidence floor,
// and semantic dedupe of near-identical explanations within a key group.
func applyGuardrails(candidates []Bridge) []Bridge {
	groups := make(map[string][]Bridge)
	var keys []string
	for _, b := range candidates {
		if b.Weight < confidenceFloor {
			continue
		}
		key := pairTypeKey(b)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], b)
	}
	sort.Strings(keys)

	var out []Bridge
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].Weight != group[j].Weight {
				return group[i].Weight > group[j].Weight
			}
			if group[i].From != group[j].From {
				return group[i].From < group[j].From
			}
			return group[i].To < group[j].To
		})
		if len(group) > pairTypeCap {
			group = group[:pairTypeCap]
		}
		// drop near-duplicate explanations, keeping the heavier sibling
		var keptWords []map[string]struct{}
		for _, b := range group {
			words := explanationWords(b.Explanation)
			dup := false
			for _, kw := range keptWords {
				if jaccard(words, kw) > jaccardCeiling {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			keptWords = append(keptWords, words)
			out = append(out, b)
		}
	}
	return out
}

// capPerSource keeps at most perSourceTypeCap bridges per source entry per
// reason type, highest weight first.
func capPerSource(candidates []Bridge) []Bridge {
	sorted := make([]Bridge, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To < sorted[j].To
	})

	counts := make(map[string]int)
	var out []Bridge
	for _, b := range sorted {
		key := b.From + "|" + string(b.PrimaryReason())
		if counts[key] >= perSourceTypeCap {
			continue
		}
		counts[key]++
		out = append(out, b)
	}
	return out
}

// finalFilter drops fallback explanations and anything violating the anchor
// invariant. Surviving bridges all have Quality == 1 by construction, but
// the invariant is enforced here regardless.
func finalFilter(candidates []Bridge) []Bridge {
	var out []Bridge
	for _, b := range candidates {
		if b.IsFallback {
			continue
		}
		if b.Quality != 1 || b.AnchorA == "" || b.AnchorB == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

func pairTypeKey(b Bridge) string {
	lo, hi := b.From, b.To
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + "|" + hi + "|" + string(b.PrimaryReason())
}
