package trace

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that wires a TracerProvider into your
// application. The module registers the provider with the dependency
// injection system and sets up a shutdown hook so buffered spans are flushed
// when the application terminates.
//
// Usage:
//
//	app := fx.New(
//	    trace.FXModule,
//	    fx.Provide(func() trace.Config {
//	        return trace.Config{ServiceName: "my-service", AppEnv: "production"}
//	    }),
//	)
//	app.Run()
//
// Processors are registered by the application after the provider is built,
// typically from an fx.Invoke that constructs the exporters.
var FXModule = fx.Module("trace",
	fx.Provide(NewTracerProvider),
	fx.Invoke(RegisterProviderLifecycle),
)

// RegisterProviderLifecycle registers a shutdown hook for the provider with
// the FX lifecycle, ensuring processors and exporters are flushed and closed
// when the application stops. It is invoked automatically by FXModule and
// normally doesn't need to be called directly.
func RegisterProviderLifecycle(lc fx.Lifecycle, provider *TracerProvider) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer provider...")
			if provider == nil {
				log.Println("INFO: tracer provider is nil, skipping shutdown")
				return nil
			}
			return provider.Shutdown(ctx)
		},
	})
}
