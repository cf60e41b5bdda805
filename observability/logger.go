// Package observability defines the pluggable logging and metrics surface of
// the client. No-op defaults keep the cost at zero when unused; zerolog and
// Prometheus implementations are provided.
package observability

// Field is one structured key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// Logger receives the client's structured log output. Adapters exist for
// zerolog (NewZerolog); any structured logger can back an implementation.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that attaches fields to every subsequent line.
	With(fields ...Field) Logger
}

type noopLogger struct{}

// NoopLogger returns a logger that discards everything. It is the default
// when no Logger is configured.
//
//nolint:ireturn // Factory function must return interface for dependency injection pattern
func NoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(string, ...Field) {}
func (l *noopLogger) Info(string, ...Field)  {}
func (l *noopLogger) Warn(string, ...Field)  {}
func (l *noopLogger) Error(string, ...Field) {}

//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l *noopLogger) With(...Field) Logger { return l }
