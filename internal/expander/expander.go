// Package expander fills network templates: every line holding a
// @@KEYWORD@@ placeholder is replaced by the lines generated for that
// keyword, every other line is copied unchanged.
//
// Overview:
//   - Responsibility: Placeholder detection and per-target code emission
//   - Key Types: Expander, Target, Keyword, Data
//   - Concurrency Model: An Expander is immutable and may be reused; each
//     Expand call reads and writes sequentially
//   - Error Semantics: Only I/O errors are returned; unknown keywords expand
//     to nothing
//   - Performance Notes: Output is built per line in memory
//
// Usage:
//
//	exp := expander.New(expander.CXX, expander.DataFrom(reg, props), expander.WithLogger(logger))
//	if err := exp.Expand(out, tmpl); err != nil { ... }
package expander

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
	"go.eggybyte.com/netgen/internal/netfile"
	"go.eggybyte.com/netgen/internal/properties"
)

// Marker opens and closes a placeholder.
const Marker = "@@"

// Data is everything a template can refer to.
type Data struct {
	Species    []netfile.Species
	AuxVars    []netfile.AuxVar
	Properties *properties.Properties
}

// DataFrom snapshots a parsed registry and its properties.
func DataFrom(reg *netfile.Registry, props *properties.Properties) Data {
	return Data{
		Species:    reg.Species(),
		AuxVars:    reg.AuxVars(),
		Properties: props,
	}
}

// Options configures an Expander.
type Options struct {
	Logger log.Logger
}

// Option configures an Expander.
type Option func(*Options)

// WithLogger sets the diagnostics logger.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Expander expands templates for one target.
type Expander struct {
	target Target
	data   Data
	logger log.Logger
}

// New creates an Expander for target over data.
func New(target Target, data Data, opts ...Option) *Expander {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	if data.Properties == nil {
		data.Properties = properties.New()
	}
	return &Expander{
		target: target,
		data:   data,
		logger: log.OrNop(options.Logger).With("target", target.String()),
	}
}

// Expand reads the template from r and writes the expansion to w. Line
// terminators of copied lines are preserved byte for byte.
func (e *Expander) Expand(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var b strings.Builder
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			b.Reset()
			e.expandLine(&b, line)
			if _, werr := bw.WriteString(b.String()); werr != nil {
				return errors.Wrap(errors.CodeInternal, "expander.Expand", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(errors.CodeInternal, "expander.Expand", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.CodeInternal, "expander.Expand", err)
	}
	return nil
}

// ExpandString expands an in-memory template.
func (e *Expander) ExpandString(tmpl string) string {
	var out strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = e.Expand(&out, strings.NewReader(tmpl))
	return out.String()
}

func (e *Expander) expandLine(b *strings.Builder, line string) {
	ph, ok := findPlaceholder(line)
	if !ok {
		b.WriteString(line)
		return
	}

	emit, ok := emitters[ph.keyword]
	if !ok {
		e.logger.Debug("ignoring unknown placeholder", log.Str("keyword", string(ph.keyword)))
		return
	}
	emit[e.target](b, ph, &e.data)
}

// findPlaceholder locates the region between the first marker and the last
// marker on the line. Lines with a single marker, or whose markers overlap,
// hold no placeholder.
func findPlaceholder(line string) (placeholder, bool) {
	start := strings.Index(line, Marker)
	if start < 0 {
		return placeholder{}, false
	}
	end := strings.LastIndex(line, Marker)
	if end < start+len(Marker) {
		return placeholder{}, false
	}

	eol := "\n"
	if strings.HasSuffix(line, "\r\n") {
		eol = "\r\n"
	}

	return placeholder{
		keyword: Keyword(line[start+len(Marker) : end]),
		line:    line,
		indent:  strings.Repeat(" ", utf8.RuneCountInString(line[:start])),
		eol:     eol,
	}, true
}
