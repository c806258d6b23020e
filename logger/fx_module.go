package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures structured logging for
// your application. The module provides:
// 1. *LoggerClient (concrete type) for direct use
// 2. Logger interface for dependency injection
// 3. A shutdown hook that flushes buffered entries
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers a flush hook for the logger with the FX
// lifecycle. It is invoked automatically by FXModule.
func RegisterLoggerLifecycle(lc fx.Lifecycle, logger *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync can fail on stderr; the entries are already written.
			_ = logger.Sync()
			return nil
		},
	})
}
