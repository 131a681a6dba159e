package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Quieted drops entries of l below floor unless debug logging is on.
// Third-party components that log every call at info go through it.
func Quieted(l *zap.SugaredLogger, floor zapcore.Level) *zap.SugaredLogger {
	if level.Enabled(zapcore.DebugLevel) {
		return l
	}

	return l.WithOptions(zap.IncreaseLevel(floor))
}
