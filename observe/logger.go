package observe

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a minimal structured logging interface.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort and must not panic.
// - Redaction: fields listed in RedactedFields are never emitted
//   verbatim.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)

	// With returns a logger that adds the fields to every entry.
	With(fields ...Field) Logger
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value any
}

// ParseLogLevel parses a string log level. Unknown strings fall back
// to info.
func ParseLogLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// zeroLogger backs the Logger interface with zerolog.
type zeroLogger struct {
	zl zerolog.Logger
}

// NewLogger creates a logger writing JSON lines to stderr at the
// given level.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a logger with a custom writer.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	zl := zerolog.New(w).Level(ParseLogLevel(level)).With().Timestamp().Logger()
	return &zeroLogger{zl: zl}
}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() Logger {
	return &zeroLogger{zl: zerolog.Nop()}
}

// With returns a logger with the fields bound to every entry.
func (l *zeroLogger) With(fields ...Field) Logger {
	zctx := l.zl.With()
	for _, f := range fields {
		if isRedactedField(f.Key) {
			zctx = zctx.Str(f.Key, redactedValue)
		} else {
			zctx = zctx.Interface(f.Key, f.Value)
		}
	}
	return &zeroLogger{zl: zctx.Logger()}
}

func (l *zeroLogger) Info(_ context.Context, msg string, fields ...Field) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zeroLogger) Warn(_ context.Context, msg string, fields ...Field) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zeroLogger) Error(_ context.Context, msg string, fields ...Field) {
	l.emit(l.zl.Error(), msg, fields)
}

func (l *zeroLogger) Debug(_ context.Context, msg string, fields ...Field) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zeroLogger) emit(e *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		if isRedactedField(f.Key) {
			e = e.Str(f.Key, redactedValue)
		} else {
			e = e.Interface(f.Key, f.Value)
		}
	}
	e.Msg(msg)
}

const redactedValue = "[REDACTED]"

// isRedactedField returns true if the field should be redacted.
func isRedactedField(key string) bool {
	for _, k := range RedactedFields {
		if k == key {
			return true
		}
	}
	return false
}

// Ensure zeroLogger implements Logger
var _ Logger = (*zeroLogger)(nil)
