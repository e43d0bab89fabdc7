// Package logger wraps a process wide zap logger with context aware helpers.
//
// Messages keep the "[area][layer] event key=value" format; the request id carried in the context
// is attached as a structured field.
package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	global.Store(zap.NewNop().Sugar())
}

// Init builds the production logger at the given level and installs it globally.
func Init(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

func Set(l *zap.Logger) {
	global.Store(l.Sugar())
}

// WithRequestID stores the request id so every log line of the request carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func from(ctx context.Context) *zap.SugaredLogger {
	l := global.Load()
	if id := RequestID(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...any) { from(ctx).Debugf(format, args...) }
func Infof(ctx context.Context, format string, args ...any)  { from(ctx).Infof(format, args...) }
func Warnf(ctx context.Context, format string, args ...any)  { from(ctx).Warnf(format, args...) }
func Errorf(ctx context.Context, format string, args ...any) { from(ctx).Errorf(format, args...) }

func Fatal(ctx context.Context, args ...any) { from(ctx).Fatal(args...) }

func Sync() {
	_ = global.Load().Sync()
}
