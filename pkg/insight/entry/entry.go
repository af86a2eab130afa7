// Package entry defines the canonical journal-entry record the engines
// consume, plus the boundary normalization that resolves raw export shapes
// into it. Everything downstream of Resolve sees exactly one record type.
package entry

import (
	"sort"
	"time"
)

// Entry is one decrypted journal entry, immutable from the engines' point of
// view. The engines never mutate or persist entries.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Plaintext string
	DeletedAt *time.Time
}

// Deleted reports whether the entry is soft-deleted and must be excluded
// from all analysis.
func (e Entry) Deleted() bool {
	return e.DeletedAt != nil
}

// Active returns the non-deleted entries, preserving order.
func Active(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Deleted() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortByCreated returns a copy sorted by CreatedAt ascending, with ID as the
// tiebreaker so equal timestamps still order deterministically.
func SortByCreated(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
