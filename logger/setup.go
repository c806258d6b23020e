package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracekit-dev/tracekit/trace"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It provides a simplified interface to the underlying Zap logger.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance. It is exposed to allow
	// direct access to Zap-specific functionality when needed, but most
	// logging should go through the wrapper methods.
	Zap *zap.Logger
}

// NewLoggerClient initializes and returns a new logger based on
// configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR")
//   - Service name as a default field
//   - Output directed to stderr
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		logLevel,
	)

	fields := []zap.Field{}
	if cfg.ServiceName != "" {
		fields = append(fields, zap.String("service", cfg.ServiceName))
	}

	return &LoggerClient{
		Zap: zap.New(core, zap.AddCaller(), zap.Fields(fields...)),
	}
}

// Debug logs a message at debug level with structured fields.
func (l *LoggerClient) Debug(msg string, fields ...zap.Field) {
	l.Zap.Debug(msg, fields...)
}

// Info logs a message at info level with structured fields.
func (l *LoggerClient) Info(msg string, fields ...zap.Field) {
	l.Zap.Info(msg, fields...)
}

// Warn logs a message at warning level with structured fields.
func (l *LoggerClient) Warn(msg string, fields ...zap.Field) {
	l.Zap.Warn(msg, fields...)
}

// Error logs a message at error level with structured fields.
func (l *LoggerClient) Error(msg string, fields ...zap.Field) {
	l.Zap.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}

// SpanFields renders a span identity as trace_id and span_id log fields so
// log entries can be correlated with exported spans. An invalid identity
// yields no fields.
func SpanFields(sc trace.SpanContext) []zap.Field {
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", sc.TraceID.String()),
		zap.String("span_id", sc.SpanID.String()),
	}
}
