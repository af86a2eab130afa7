package bridge

import (
	"github.com/mirrorwell/insight/pkg/insight/lexical"
	"github.com/mirrorwell/insight/pkg/insight/signals"
)

// evidence records which minimum-evidence signals hold for a pair. A pair
// with no evidence at all never becomes a bridge, whatever its score.
type evidence struct {
	SharedKeyword string
	SharedEntity  string
	SharedTheme   signals.Theme
}

func (e evidence) any(seq float64) bool {
	return e.SharedKeyword != "" || e.SharedEntity != "" || e.SharedTheme != "" || seq > 0
}

// gatherEvidence checks keyword overlap (tokens longer than three chars),
// shared capitalized entities, and shared per-text theme tags.
func gatherEvidence(tok *lexical.Tokenizer, textA, textB string) evidence {
	var ev evidence

	if kw, ok := lexical.SharedAny(tok.Keywords(textA), tok.Keywords(textB)); ok {
		ev.SharedKeyword = kw
	}
	if shared := lexical.SharedEntities(textA, textB); len(shared) > 0 {
		ev.SharedEntity = shared[0]
	}
	if theme, ok := sharedTheme(signals.Themes(textA), signals.Themes(textB)); ok {
		ev.SharedTheme = theme
	}
	return ev
}

func sharedTheme(a, b []signals.Theme) (signals.Theme, bool) {
	set := make(map[signals.Theme]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t]; ok {
			return t, true
		}
	}
	return "", false
}
