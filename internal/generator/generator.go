// Package generator runs one complete generation: parse the network file,
// load the properties, expand both templates and write the results.
//
// Overview:
//   - Responsibility: Orchestrate netfile, properties and expander for a
//     validated config.Config
//   - Key Types: Generator, Result
//   - Concurrency Model: Single-threaded; each Run owns its registry and
//     properties
//   - Error Semantics: Every fatal condition goes through Abort, which
//     replaces the Fortran output with a stub that fails compilation
//   - Performance Notes: Both outputs are rendered in memory before either
//     file is written
//
// Usage:
//
//	gen := generator.New(generator.WithLogger(logger))
//	if _, err := gen.Run(cfg); err != nil {
//	    os.Exit(1)
//	}
package generator

import (
	"bytes"
	"os"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
	"go.eggybyte.com/netgen/internal/config"
	"go.eggybyte.com/netgen/internal/expander"
	"go.eggybyte.com/netgen/internal/netfile"
	"go.eggybyte.com/netgen/internal/properties"
)

// StubText replaces the Fortran output when a run fails.
const StubText = "There was an error parsing the network files"

// Generator runs generations.
type Generator struct {
	logger log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the diagnostics logger.
func WithLogger(l log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = log.OrNop(g.logger)
	return g
}

// Result describes a successful run.
type Result struct {
	Registry   *netfile.Registry
	Properties *properties.Properties
	Written    []string
}

type job struct {
	target   expander.Target
	template string
	output   string
}

// Run performs a generation for cfg.
//
// Parameters:
//   - cfg: Run configuration; validated before any file is read
//
// Returns:
//   - *Result: Parsed inputs and the files written
//   - error: Structured error; the Fortran output then holds StubText
func (g *Generator) Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, g.Abort(cfg.Fortran.Output, err)
	}

	reg, err := netfile.Load(cfg.NetworkFile, netfile.Options{
		Defines: netfile.NewDefines(cfg.Defines...),
		Logger:  g.logger,
	})
	if err != nil {
		return nil, g.Abort(cfg.Fortran.Output, err)
	}

	props, err := properties.Load(cfg.PropertiesFile, g.logger)
	if err != nil {
		return nil, g.Abort(cfg.Fortran.Output, err)
	}

	data := expander.DataFrom(reg, props)
	jobs := []job{
		{expander.Fortran, cfg.Fortran.Template, cfg.Fortran.Output},
		{expander.CXX, cfg.CXX.Template, cfg.CXX.Output},
	}

	rendered := make([][]byte, len(jobs))
	for i, j := range jobs {
		out, err := g.render(j, data)
		if err != nil {
			return nil, g.Abort(cfg.Fortran.Output, err)
		}
		rendered[i] = out
	}

	res := &Result{Registry: reg, Properties: props}
	for i, j := range jobs {
		g.logger.Info("writing "+j.output, log.Str("target", j.target.String()))
		if err := os.WriteFile(j.output, rendered[i], 0o644); err != nil {
			return nil, g.Abort(cfg.Fortran.Output,
				errors.Wrapf(errors.CodeInternal, "generator.Run", err, "writing %s", j.output))
		}
		res.Written = append(res.Written, j.output)
	}
	return res, nil
}

func (g *Generator) render(j job, data expander.Data) ([]byte, error) {
	tmpl, err := os.Open(j.template)
	if err != nil {
		code := errors.CodeInternal
		if os.IsNotExist(err) {
			code = errors.CodeNotFound
		}
		return nil, errors.Wrapf(code, "generator.render", err, "template %s", j.template)
	}
	defer tmpl.Close()

	var buf bytes.Buffer
	exp := expander.New(j.target, data, expander.WithLogger(g.logger))
	if err := exp.Expand(&buf, tmpl); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Abort writes StubText to primaryOutput and returns cause. Without an output
// path only the error is reported.
func (g *Generator) Abort(primaryOutput string, cause error) error {
	g.logger.Error(cause, "generation failed", log.Str("stub", primaryOutput))
	if primaryOutput == "" {
		return cause
	}
	if err := os.WriteFile(primaryOutput, []byte(StubText), 0o644); err != nil {
		g.logger.Error(err, "cannot write stub output", log.Str("path", primaryOutput))
	}
	return cause
}
