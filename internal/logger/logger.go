package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // One logger and one level for the whole process.
var (
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	global = New(level)
)

// errUnknownLevel is returned by Configure for a level name zap does not know.
var errUnknownLevel = errors.New("unknown log level")

// New builds a console logger on stderr filtered by enabler.
func New(enabler zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	encodeLevel := zapcore.CapitalLevelEncoder

	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	//nolint:exhaustruct // Function and stacktrace keys stay empty.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      encodeLevel,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " | ",
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), enabler), options...).Sugar()
}

// ParseLogLevel maps a level name to a zap level. An empty name means info.
func ParseLogLevel(name string) (zapcore.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "":
		return zapcore.InfoLevel, true
	case "warning":
		return zapcore.WarnLevel, true
	}

	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, false
	}

	return parsed, true
}

// Configure switches the process log level, e.g. to "debug".
func Configure(name string) error {
	parsed, ok := ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLevel, name)
	}

	level.SetLevel(parsed)

	return nil
}

// Level reports the process log level.
func Level() zapcore.Level {
	return level.Level()
}

// Debug logs args at debug level.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

// DebugKV logs message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, kvs...)
}

// Info logs args at info level.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

// InfoKV logs message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, kvs...)
}

// Warn logs args at warn level.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

// WarnKV logs message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, kvs...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs message with key-value pairs at error level.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Errorw(message, kvs...)
}
