package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log
// level.
const (
	// Debug represents the most verbose logging level, intended for
	// development and troubleshooting.
	Debug = "debug"

	// Info represents the standard logging level for general operational
	// information.
	Info = "info"

	// Warning represents the logging level for potential issues that aren't
	// errors.
	Warning = "warning"

	// Error represents the logging level for error conditions.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error"; anything else
	// falls back to "info".
	Level string

	// ServiceName is the name of the service emitting log entries. It is
	// added as the "service" field on every entry.
	ServiceName string
}
