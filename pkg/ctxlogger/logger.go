package ctxlogger

import (
	"context"

	"github.com/IsaacDSC/eventory/pkg/logs"
)

type LoggerKey struct{}

var loggerKey = LoggerKey{}

func WithLogger(ctx context.Context, logger *logs.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or the default one.
func GetLogger(ctx context.Context) *logs.Logger {
	if ctx == nil {
		return logs.Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*logs.Logger); ok {
		return logger
	}

	return logs.Default()
}

// With adds attributes to the logger carried by ctx.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, GetLogger(ctx).With(args...))
}
