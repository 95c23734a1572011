// Package logging is a thin key/value facade over zap used by every layer of
// the league service. Context variants attach the active trace and span ids.
package logging

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Logger is safe for concurrent use. A nil *Logger logs through Default.
type Logger struct {
	base   *zap.Logger
	synced *atomic.Bool
}

var std atomic.Pointer[Logger]

func init() {
	std.Store(NewNop())
}

// NewJSON logs JSON lines to stdout at or above level.
func NewJSON(level Level) *Logger {
	return NewJSONWriter(os.Stdout, level)
}

// NewJSONWriter is NewJSON with an explicit sink.
func NewJSONWriter(w io.Writer, level Level) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.FunctionKey = zapcore.OmitKey
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return wrap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(LevelError)))
}

func NewNop() *Logger {
	return wrap(zap.NewNop())
}

func wrap(z *zap.Logger) *Logger {
	return &Logger{base: z, synced: new(atomic.Bool)}
}

func Default() *Logger {
	return std.Load()
}

// SetDefault replaces the process logger; nil resets it to a no-op logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = NewNop()
	}
	std.Store(l)
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.base.Sync()
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	parent := l.orDefault()
	return &Logger{base: parent.base.With(fields(kv)...), synced: parent.synced}
}

func (l *Logger) Debug(msg string, kv ...any) { l.write(nil, LevelDebug, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.write(nil, LevelInfo, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.write(nil, LevelWarn, msg, kv) }
func (l *Logger) Error(msg string, kv ...any) { l.write(nil, LevelError, msg, kv) }

func (l *Logger) DebugContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelDebug, msg, kv)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelInfo, msg, kv)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelWarn, msg, kv)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, kv ...any) {
	l.write(ctx, LevelError, msg, kv)
}

func (l *Logger) orDefault() *Logger {
	if l == nil {
		return Default()
	}
	return l
}

func (l *Logger) write(ctx context.Context, level Level, msg string, kv []any) {
	ce := l.orDefault().base.Check(level, msg)
	if ce == nil {
		return
	}
	out := fields(kv)
	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			out = append(out,
				zap.Stringer("trace_id", sc.TraceID()),
				zap.Stringer("span_id", sc.SpanID()),
			)
		}
	}
	ce.Write(out...)
}

// fields pairs up kv. Non-string keys become "arg" and a dangling key logs
// a null value.
func fields(kv []any) []zap.Field {
	if len(kv) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(kv)/2+2)
	for len(kv) > 0 {
		key, _ := kv[0].(string)
		if key == "" {
			key = "arg"
		}
		var val any
		if len(kv) > 1 {
			val = kv[1]
			kv = kv[2:]
		} else {
			kv = kv[1:]
		}
		if err, ok := val.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, val))
	}
	return out
}
