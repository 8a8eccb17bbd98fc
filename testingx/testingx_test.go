package testingx

import (
	"path/filepath"
	"testing"

	"go.eggybyte.com/netgen/core/errors"
)

func TestMockLogger_Levels(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error(errors.New(errors.CodeInternal, "boom"), "error message")

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, want := range levels {
		if entries[i].Level != want {
			t.Errorf("entry %d: expected level %s, got %s", i, want, entries[i].Level)
		}
	}
	if len(entries[0].Fields) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(entries[0].Fields))
	}
	if entries[3].Error == nil {
		t.Error("Error entry should carry the error")
	}
}

func TestMockLogger_WithSharesEntries(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("target", "cxx")
	child.Info("expanded")

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected child entries on parent, got %d", len(entries))
	}
	if len(entries[0].Fields) != 2 || entries[0].Fields[0] != "target" {
		t.Errorf("Expected With fields to be prepended, got %v", entries[0].Fields)
	}
}

func TestMockLogger_AssertionsAndClear(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Warn("skipped")
	logger.Warn("skipped")

	logger.AssertLogged("WARN", "skipped")
	logger.AssertNotLogged("INFO", "skipped")
	if n := logger.Count("WARN", "skipped"); n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	logger.Clear()
	if len(logger.Entries()) != 0 {
		t.Error("Clear should remove all entries")
	}
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New(errors.CodeNotFound, "missing"), errors.CodeNotFound)
	AssertNoError(t, nil)
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("nested", "species.net"), "He4 he4 4.0 2.0\n")

	if filepath.Dir(path) != filepath.Join(dir, "nested") {
		t.Errorf("unexpected path %s", path)
	}
	if got := ReadFile(t, path); got != "He4 he4 4.0 2.0\n" {
		t.Errorf("ReadFile() = %q", got)
	}
}
