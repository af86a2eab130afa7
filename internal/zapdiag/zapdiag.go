// Package zapdiag adapts a zap logger to the engine's diagnostics port.
// Only binaries wire this in; library consumers keep the no-op sink.
package zapdiag

import (
	"go.uber.org/zap"

	"github.com/mirrorwell/insight/pkg/insight/diag"
)

type sink struct {
	log *zap.SugaredLogger
}

// New wraps the logger as a diag.Sink.
func New(log *zap.SugaredLogger) diag.Sink {
	return &sink{log: log}
}

func (s *sink) Debugf(format string, args ...any) {
	s.log.Debugf(format, args...)
}

func (s *sink) Warnf(format string, args ...any) {
	s.log.Warnf(format, args...)
}
