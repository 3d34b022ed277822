package observe

import (
	"context"
	"io"
	"os"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents a logging level.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLogLevel parses a string log level. Unknown values map to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l LogLevel) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// structuredLogger writes one JSON object per line through logrus.
type structuredLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a new structured logger writing to stderr.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a new structured logger with a custom writer.
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(ParseLogLevel(level).logrus())
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
		},
	})
	return &structuredLogger{entry: logrus.NewEntry(l)}
}

// WithCheck returns a logger with check context attached to every line.
func (l *structuredLogger) WithCheck(meta CheckMeta) Logger {
	fields := logrus.Fields{
		"check.id":   meta.CheckID(),
		"check.name": meta.Name,
	}
	if meta.Namespace != "" {
		fields["check.namespace"] = meta.Namespace
	}
	if meta.Target != "" {
		fields["check.target"] = meta.Target
	}
	return &structuredLogger{entry: l.entry.WithFields(fields)}
}

func (l *structuredLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Info(msg)
}

func (l *structuredLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Warn(msg)
}

func (l *structuredLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Error(msg)
}

func (l *structuredLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.with(ctx, fields).Debug(msg)
}

func (l *structuredLogger) with(ctx context.Context, fields []Field) *logrus.Entry {
	entry := l.entry.WithContext(ctx)
	if len(fields) == 0 {
		return entry
	}
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		if isRedactedField(f.Key) {
			data[f.Key] = "[REDACTED]"
		} else {
			data[f.Key] = f.Value
		}
	}
	return entry.WithFields(data)
}

func isRedactedField(key string) bool {
	return slices.Contains(RedactedFields, key)
}

var _ Logger = (*structuredLogger)(nil)
