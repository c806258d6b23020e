package stdoutexport

import (
	"context"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracekit-dev/tracekit/trace"
)

// Config defines the configuration for the console span exporter.
type Config struct {
	// Logger is the zap logger span lines are written through. Nil means a
	// production JSON logger writing to stdout.
	Logger *zap.Logger

	// IncludeEvents controls whether span events are rendered on each line.
	// Attributes are always included.
	IncludeEvents bool
}

// Exporter writes finished spans to the console as structured log lines.
// It implements the trace.Exporter interface.
type Exporter struct {
	cfg      Config
	logger   *zap.Logger
	shutdown atomic.Bool
}

var _ trace.Exporter = (*Exporter)(nil)

// New creates a console span exporter.
func New(cfg Config) *Exporter {
	logger := cfg.Logger
	if logger == nil {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			zap.InfoLevel,
		)
		logger = zap.New(core)
	}
	return &Exporter{cfg: cfg, logger: logger}
}

// Export writes one line per span.
func (e *Exporter) Export(ctx context.Context, batch []*trace.SpanData) trace.ExportResult {
	if e.shutdown.Load() {
		return trace.ExportFailedNotRetryable
	}

	for _, sd := range batch {
		if sd == nil {
			continue
		}
		fields := []zap.Field{
			zap.String("trace_id", sd.SpanContext.TraceID.String()),
			zap.String("span_id", sd.SpanContext.SpanID.String()),
			zap.String("parent_span_id", sd.ParentSpanID.String()),
			zap.String("kind", sd.SpanKind.String()),
			zap.Time("start_time", sd.StartTime),
			zap.Time("end_time", sd.EndTime),
			zap.Duration("duration", sd.EndTime.Sub(sd.StartTime)),
			zap.String("status", sd.Status.Code.String()),
		}
		if sd.Status.Message != "" {
			fields = append(fields, zap.String("status_message", sd.Status.Message))
		}
		if sd.Attributes != nil {
			for _, kv := range sd.Attributes.All() {
				fields = append(fields, zap.String("attr."+kv.Key, kv.Value.Emit()))
			}
		}
		if e.cfg.IncludeEvents && sd.Events != nil {
			names := make([]string, 0, sd.Events.Len())
			for _, ev := range sd.Events.All() {
				names = append(names, ev.Name)
			}
			fields = append(fields, zap.Strings("events", names))
		}
		e.logger.Info(sd.Name, fields...)
	}
	return trace.ExportSuccess
}

// Shutdown flushes the logger. Idempotent.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.shutdown.Swap(true) {
		return nil
	}
	// Sync can fail on stdout; the lines are already written.
	_ = e.logger.Sync()
	return nil
}
