// Package diag is the diagnostics port for the insight engines.
//
// The engines are pure functions; anything they want to say about their own
// behavior (candidate counts, content hashes, dropped pairs) goes through a
// Sink supplied by the caller. The default sink discards everything, so a
// caller that does not care pays nothing and output never depends on it.
package diag

// Sink receives development-time diagnostics from the engines.
type Sink interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopSink struct{}

func (nopSink) Debugf(string, ...any) {}
func (nopSink) Warnf(string, ...any)  {}

// Nop is a sink that discards all diagnostics.
var Nop Sink = nopSink{}

// OrNop returns s, or Nop when s is nil, so engine code never has to
// nil-check its sink.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop
	}
	return s
}
