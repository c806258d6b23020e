package metrics

import (
	"go.uber.org/fx"

	"github.com/tracekit-dev/tracekit/observability"
)

// FXModule provides a Uber FX module that wires the pipeline metrics
// observer into your application. The module provides:
// 1. *ExportObserver (concrete type) for direct use (Handler, Registry)
// 2. observability.Observer interface for injection into pipeline packages
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewExportObserver,
		fx.Annotate(
			func(o *ExportObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
)
