package logger

import "go.uber.org/zap"

// Logger provides structured logging capabilities for applications and the
// export pipeline.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Debug logs a message at debug level with structured fields.
	Debug(msg string, fields ...zap.Field)

	// Info logs a message at info level with structured fields.
	Info(msg string, fields ...zap.Field)

	// Warn logs a message at warning level with structured fields.
	Warn(msg string, fields ...zap.Field)

	// Error logs a message at error level with structured fields.
	Error(msg string, fields ...zap.Field)

	// Sync flushes any buffered log entries.
	Sync() error
}
