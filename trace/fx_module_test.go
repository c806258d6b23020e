package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModuleProvidesProvider(t *testing.T) {
	t.Parallel()

	var provider *TracerProvider

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{ServiceName: "fx-test", AppEnv: "test"}
		}),
		fx.Populate(&provider),
	)

	app.RequireStart()
	require.NotNil(t, provider)
	assert.False(t, provider.IsShutdown())

	attrs := provider.Resource().Attributes()
	assert.Contains(t, attrs, String("service.name", "fx-test"))

	app.RequireStop()
	assert.True(t, provider.IsShutdown(), "OnStop must shut the provider down")
}

func TestFXModuleShutdownFlushesProcessors(t *testing.T) {
	t.Parallel()

	var provider *TracerProvider
	capture := &captureProcessor{}

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{ServiceName: "fx-test"} }),
		fx.Populate(&provider),
		fx.Invoke(func(p *TracerProvider) {
			p.RegisterSpanProcessor(capture)
		}),
	)

	app.RequireStart()

	tracer := provider.Tracer("fx-test", "")
	_, span := tracer.Start(context.Background(), "op")
	span.Release()
	require.Len(t, capture.received(), 1)

	app.RequireStop()
	assert.Equal(t, 1, capture.shutdowns)
}
