// Package log provides a minimal logging interface compatible with slog concepts.
//
// Overview:
//   - Responsibility: Define the logging interface shared by every generator component
//   - Key Types: Logger interface with structured key-value logging, Nop fallback
//   - Concurrency Model: Logger implementations must be safe for concurrent use
//   - Error Semantics: Error method accepts error as first parameter for structured logging
//   - Performance Notes: Interface designed for zero-allocation key-value pairs
//
// Usage:
//
//	logger.Info("working on network file", log.Str("path", path))
//	logger.Error(err, "malformed record", log.Int("line", n))
package log

// Logger defines a structured logging interface compatible with slog concepts.
// Implementations must be safe for concurrent use.
type Logger interface {
	// With returns a new Logger with the given key-value pairs attached.
	With(kv ...any) Logger

	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, kv ...any)

	// Info logs an informational message with optional key-value pairs.
	Info(msg string, kv ...any)

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, kv ...any)

	// Error logs an error message with the error and optional key-value pairs.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair for structured logging.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair for structured logging.
func Int(k string, v int) any {
	return []any{k, v}
}

// Strs creates a string-slice key-value pair for structured logging.
func Strs(k string, v []string) any {
	return []any{k, v}
}

// OrNop returns l, or a Logger that discards everything when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}

// Nop is a Logger that discards all records.
type Nop struct{}

func (Nop) With(kv ...any) Logger                  { return Nop{} }
func (Nop) Debug(msg string, kv ...any)            {}
func (Nop) Info(msg string, kv ...any)             {}
func (Nop) Warn(msg string, kv ...any)             {}
func (Nop) Error(err error, msg string, kv ...any) {}
