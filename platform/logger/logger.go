package logger

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

type logger struct {
	z *zap.Logger
}

var global = &logger{z: zap.NewNop()}

// Init replaces the global logger. Output always goes to stderr so that
// command output on stdout stays machine readable.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(lvl))
	global = &logger{z: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))}

	return nil
}

func L() *logger { return global }

func With(fields ...Field) *logger { return global.With(fields...) }

func Sync() error { return global.z.Sync() }

// WithSessionID returns a context whose log lines carry the session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{z: l.z.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelDebug, msg, fields)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelInfo, msg, fields)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelWarn, msg, fields)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelError, msg, fields)
}

func (l *logger) log(ctx context.Context, lvl zapcore.Level, msg string, fields []Field) {
	if ctx != nil {
		if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
			fields = append(fields, String("session_id", id))
		}
	}
	l.z.Log(lvl, msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.log(ctx, LevelDebug, msg, fields)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.log(ctx, LevelInfo, msg, fields)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.log(ctx, LevelWarn, msg, fields)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.log(ctx, LevelError, msg, fields)
}

// NoopLogger discards everything. Useful as a default for optional loggers.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Field) {}
func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Warn(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
