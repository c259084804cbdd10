package logger

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Context(ctx context.Context) context.Context

	Debug(ctx context.Context, log string, fields ...zapcore.Field)
	Info(ctx context.Context, log string, fields ...zapcore.Field)
	Warn(ctx context.Context, log string, fields ...zapcore.Field)
	Error(ctx context.Context, log string, fields ...zapcore.Field)
}

var Module = fx.Provide(func() Logger {
	return New("debug")
})

// New constructs a new logger.
func New(level string) Logger {
	stdoutSyncer := zapcore.Lock(os.Stdout)

	prodEncoderConfig := zap.NewProductionEncoderConfig()
	prodEncoderConfig.FunctionKey = "func"

	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(prodEncoderConfig),
			stdoutSyncer,
			getLevel(level),
		),
	)

	// AddCallerSkip option - skips stack trace where log called
	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	l := logger{}
	l.lg = log
	l.idGenerator = defaultIDGenerator()
	return &l
}

type logger struct {
	lg          *zap.Logger
	idGenerator IDGenerator
}

func getLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func (l *logger) Context(ctx context.Context) context.Context {
	_, ok := ctx.Value(&logCtx).(*logContext)
	if ok {
		return ctx
	}

	return context.WithValue(ctx, &logCtx, newLogContext(l.idGenerator.NewLogID(ctx)))
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Debug(log, fields...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Info(log, fields...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Warn(log, fields...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Error(log, fields...)
}
