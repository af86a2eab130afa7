package bridge

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// stableHash is the deterministic pseudo-randomness used for paraphrase
// selection and explanation dedupe. FNV-1a is stable across runs and
// platforms; do not replace it with anything seeded from ambient state.
func stableHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// pick selects one variant deterministically from key.
func pick(variants []string, key string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[stableHash(key)%uint64(len(variants))]
}

// ContentHash computes the determinism check hash: FNV-1a over the sorted
// (from, to, primaryReason) tuples of the set. Identical inputs to Build
// must always yield an identical hash.
func ContentHash(bridges []Bridge) uint64 {
	tuples := make([]string, len(bridges))
	for i, b := range bridges {
		tuples[i] = fmt.Sprintf("%s|%s|%s", b.From, b.To, b.PrimaryReason())
	}
	sort.Strings(tuples)
	return stableHash(strings.Join(tuples, "\n"))
}
