package testingx

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
)

// MockLogger is a mock logger for testing.
type MockLogger struct {
	t       *testing.T
	mu      *sync.Mutex
	entries *[]LogEntry
	fields  []any
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t *testing.T) *MockLogger {
	entries := make([]LogEntry, 0)
	return &MockLogger{
		t:       t,
		mu:      &sync.Mutex{},
		entries: &entries,
	}
}

// With returns a logger that shares this logger's entries and prepends kv
// to every record it writes.
func (m *MockLogger) With(kv ...any) log.Logger {
	return &MockLogger{
		t:       m.t,
		mu:      m.mu,
		entries: m.entries,
		fields:  append(append([]any{}, m.fields...), kv...),
	}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error logs an error message.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, m.fields...), kv...),
		Error:   err,
	})
}

// Entries returns all log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]LogEntry, len(*m.entries))
	copy(entries, *m.entries)
	return entries
}

// Count returns how many entries were logged at level with message msg.
func (m *MockLogger) Count(level, msg string) int {
	n := 0
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == msg {
			n++
		}
	}
	return n
}

// AssertLogged asserts that a message was logged.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	if m.Count(level, msg) == 0 {
		m.t.Errorf("Expected log message not found: level=%s msg=%q", level, msg)
	}
}

// AssertNotLogged asserts that a message was never logged.
func (m *MockLogger) AssertNotLogged(level, msg string) {
	m.t.Helper()
	if n := m.Count(level, msg); n != 0 {
		m.t.Errorf("Unexpected log message: level=%s msg=%q (%d times)", level, msg, n)
	}
}

// Clear clears all log entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = (*m.entries)[:0]
}

// AssertError asserts that an error has the expected code.
func AssertError(t *testing.T, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
	}

	if code := errors.CodeOf(err); code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}

// AssertNoError asserts that no error occurred.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
