package entry

import (
	"time"

	"github.com/mirrorwell/insight/pkg/insight/diag"
)

// SourceKind tags the provenance of a raw record so the union is resolved
// exactly once, here, instead of being field-sniffed downstream.
type SourceKind string

const (
	// SourceJournal is a record authored in the journaling UI.
	SourceJournal SourceKind = "journal"
	// SourceImport is a record from a bulk export/import, which carries its
	// body under a different field and may use looser timestamp formats.
	SourceImport SourceKind = "import"
)

// Raw is the untrusted record shape as it arrives from exports or the
// application boundary.
type Raw struct {
	SourceKind SourceKind `json:"sourceKind"`
	ID         string     `json:"id"`
	CreatedAt  string     `json:"createdAt"`
	Timestamp  string     `json:"timestamp,omitempty"` // import shape
	Text       string     `json:"text,omitempty"`
	Body       string     `json:"body,omitempty"` // import shape
	DeletedAt  string     `json:"deletedAt,omitempty"`
}

// timestampLayouts are tried in order when resolving raw timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Resolve normalizes raw records into canonical entries. Records with no ID
// or no parseable timestamp on any known field are skipped and reported to
// the sink; resolution never fails.
func Resolve(raws []Raw, sink diag.Sink) []Entry {
	sink = diag.OrNop(sink)
	out := make([]Entry, 0, len(raws))
	for _, r := range raws {
		if r.ID == "" {
			sink.Warnf("entry: skipping record with empty id")
			continue
		}
		created, ok := parseTimestamp(r.CreatedAt)
		if !ok {
			created, ok = parseTimestamp(r.Timestamp)
		}
		if !ok {
			sink.Warnf("entry %s: no parseable timestamp on any known field", r.ID)
			continue
		}

		text := r.Text
		if r.SourceKind == SourceImport && r.Body != "" {
			text = r.Body
		}

		e := Entry{ID: r.ID, CreatedAt: created, Plaintext: text}
		if del, ok := parseTimestamp(r.DeletedAt); ok {
			e.DeletedAt = &del
		}
		out = append(out, e)
	}
	return out
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
