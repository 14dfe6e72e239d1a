// Package logger provides a global, Sugared Zap logger that can be enriched
// through the context. Records automatically carry the OpenTelemetry trace and
// span identifiers of the span active when they are written, and an OTEL bridge
// core is added when telemetry registered a LoggerProvider.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/sekadau-online/bitcoin-monitor/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type used to store a derived logger in a context.
type ctxKeyType struct{}

// ctxKey is the context key under which Derive stores its logger.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the process-wide logger configured by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce guards baseLogger so it is built a single time.
	initBaseLoggerOnce sync.Once

	// nopLogger is used until Init runs so packages can log from tests.
	nopLogger = zap.NewNop().Sugar()
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic" or "fatal"). Logs are JSON encoded on stdout. When
// telemetry.LoggerProvider returns a provider, records are also forwarded to
// it. Calls after the first successful one have no effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(telemetry.InstrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. Call it before the process exits.
func Sync() error {
	if baseLogger == nil {
		return nil
	}
	return baseLogger.Sync()
}

// fromCtx returns the logger stored in ctx, falling back to the base logger.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = baseLogger
	}
	if l == nil {
		l = nopLogger
	}
	return l
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) with the
// active trace identifiers and the given key/value pairs attached. Only the
// logging calls use it; the context never stores a logger that already carries
// trace identifiers, so each record gets them exactly once.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l := fromCtx(ctx)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a child context whose logger carries the given key/value
// pairs on every subsequent log call made with it. Trace identifiers are
// resolved when a record is written, from the span active at that point.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l := fromCtx(ctx)
	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}
	return context.WithValue(ctx, ctxKey, l)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message and then panics.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and then calls os.Exit(1).
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
