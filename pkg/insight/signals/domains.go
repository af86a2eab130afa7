package signals

import (
	"regexp"
	"sort"
)

// Domain names a specific-vocabulary cluster used for mismatch damping.
type Domain string

const (
	DomainGovernment Domain = "government"
	DomainCode       Domain = "code"
	DomainFitness    Domain = "fitness"
	DomainNetwork    Domain = "network"
)

// The marker lists are deliberately small and hand-curated. They exist to
// catch the worst homonym traps ("the system" in a policy rant vs. a
// deployment log), not to be a general domain classifier; unlisted domains
// simply never dampen.
var domainMarkers = map[Domain]*regexp.Regexp{
	DomainGovernment: regexp.MustCompile(`(?i)\b(government|parliament|ministry|election|legislation|senate|regulation|taxpayer)s?\b`),
	DomainCode:       regexp.MustCompile(`(?i)\b(deploy(ed|ment)?|refactor\w*|compiler?|bugs?|codebase|pull\s+request|commits?|server)s?\b`),
	DomainFitness:    regexp.MustCompile(`(?i)\b(workouts?|gym|reps?|deadlifts?|squats?|cardio|protein|marathon)s?\b`),
	DomainNetwork:    regexp.MustCompile(`(?i)\b(router|bandwidth|latency|packets?|wifi|dns|firewall|subnet)s?\b`),
}

// DomainsOf returns the domains whose markers fire in the text, in a stable
// order.
func DomainsOf(text string) []Domain {
	var out []Domain
	for d, re := range domainMarkers {
		if re.MatchString(text) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DomainMismatch reports whether the two texts each sit in specific domains
// with no overlap. A pair like that is probably using "systems" language
// about unrelated things.
func DomainMismatch(textA, textB string) bool {
	da := DomainsOf(textA)
	db := DomainsOf(textB)
	if len(da) == 0 || len(db) == 0 {
		return false
	}
	set := make(map[Domain]struct{}, len(da))
	for _, d := range da {
		set[d] = struct{}{}
	}
	for _, d := range db {
		if _, ok := set[d]; ok {
			return false
		}
	}
	return true
}
