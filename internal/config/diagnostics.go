package config

import (
	"fmt"
	"strings"

	"go.eggybyte.com/netgen/core/errors"
)

// Severity is the severity of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one issue found in a manifest.
type Diagnostic struct {
	Severity   Severity
	Message    string
	Path       string
	Suggestion string
}

func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(string(d.Severity))
	b.WriteString(": ")
	if d.Path != "" {
		b.WriteString(d.Path)
		b.WriteString(": ")
	}
	b.WriteString(d.Message)
	if d.Suggestion != "" {
		fmt.Fprintf(&b, " (%s)", d.Suggestion)
	}
	return b.String()
}

// Diagnostics collects manifest issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates an empty collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(severity Severity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddError appends an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

// AddWarning appends a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return d.count(SeverityError) > 0
}

// HasWarnings reports whether any warning-level diagnostic was recorded.
func (d *Diagnostics) HasWarnings() bool {
	return d.count(SeverityWarning) > 0
}

func (d *Diagnostics) count(s Severity) int {
	n := 0
	for _, item := range d.items {
		if item.Severity == s {
			n++
		}
	}
	return n
}

// Items returns a copy of all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}

// Err folds the error-level diagnostics into a single CodeInvalidArgument
// error, or returns nil when there are none.
func (d *Diagnostics) Err() error {
	var msgs []string
	for _, item := range d.items {
		if item.Severity == SeverityError {
			msgs = append(msgs, item.String())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return errors.Build(errors.CodeInvalidArgument).
		WithOp("config.Load").
		WithMsg(strings.Join(msgs, "; ")).
		Err()
}
