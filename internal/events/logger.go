package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

// loggerAdapter routes watermill logs to zap.
type loggerAdapter struct {
	log *zap.SugaredLogger
}

func newLoggerAdapter(log *zap.SugaredLogger) *loggerAdapter {
	return &loggerAdapter{log: log}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Errorw(msg, append(keyValues(fields), "error", err)...)
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Infow(msg, keyValues(fields)...)
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debugw(msg, keyValues(fields)...)
}

// Trace is mapped to debug; zap has no trace level.
func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debugw(msg, keyValues(fields)...)
}

//nolint:ireturn // Required by watermill.LoggerAdapter.
func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{log: a.log.With(keyValues(fields)...)}
}

func keyValues(fields watermill.LogFields) []any {
	kvs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kvs = append(kvs, k, v)
	}

	return kvs
}
