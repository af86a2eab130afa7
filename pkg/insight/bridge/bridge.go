// Package bridge constructs narrative bridges: weighted, evidence-gated,
// deterministic links between pairs of journal entries. A bridge asserts
// that a later entry thematically or temporally follows from an earlier one,
// and carries an explanation grounded in concrete tokens from both sides.
//
// The whole pipeline is a pure function of its input: same records, same
// options, same output, byte for byte. Anything that could introduce
// nondeterminism (map iteration, randomness in paraphrase choice) is routed
// through sorted orders and a stable string hash instead.
package bridge

import "time"

// Reason tags why a bridge exists.
type Reason string

const (
	ReasonSequence Reason = "sequence"
	ReasonScale    Reason = "scale"
	ReasonSystemic Reason = "systemic"
	ReasonContrast Reason = "contrast"
	ReasonMedia    Reason = "media"
)

// reasonPriority orders reasons for primary-reason selection and
// explanation framing. Lower is higher priority.
var reasonPriority = map[Reason]int{
	ReasonContrast: 0,
	ReasonScale:    1,
	ReasonMedia:    2,
	ReasonSystemic: 3,
	ReasonSequence: 4,
}

// Record is the input shape: one entry with decrypted text.
type Record struct {
	ID        string
	CreatedAt time.Time
	Text      string
}

// SignalDetail carries the raw hit lists behind a bridge's score.
type SignalDetail struct {
	Scale          []string
	Systemic       []string
	Media          []string
	Contrast       []string
	DaysApart      float64
	Reversal       bool
	DomainMismatch bool
}

// Bridge is a directed edge from an earlier entry to a later one.
type Bridge struct {
	From        string
	To          string
	Weight      float64 // 0..1 composite score
	Reasons     []Reason
	Explanation string
	AnchorA     string // 2-6 word phrase from the earlier entry
	AnchorB     string // 2-6 word phrase from the later entry
	Quality     float64
	Signals     SignalDetail
	IsFallback  bool
}

// PrimaryReason returns the bridge's highest-priority reason.
func (b Bridge) PrimaryReason() Reason {
	best := ReasonSequence
	bestRank := reasonPriority[best] + 1
	for _, r := range b.Reasons {
		if rank := reasonPriority[r]; rank < bestRank {
			best = r
			bestRank = rank
		}
	}
	return best
}
