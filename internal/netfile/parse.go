package netfile

import (
	"io"
	"os"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
)

// Options carries the run state the parser depends on.
type Options struct {
	Defines Defines    // Active preprocessor defines
	Logger  log.Logger // Diagnostics sink (nil discards)
}

// Load opens path and parses it with Parse. A missing file is a
// CodeNotFound error.
func Load(path string, opts Options) (*Registry, error) {
	logger := log.OrNop(opts.Logger)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.CodeNotFound, "netfile.Load", err, "file %s does not exist", path)
		}
		return nil, errors.Wrapf(errors.CodeInternal, "netfile.Load", err, "cannot open %s", path)
	}
	defer f.Close()

	logger.Info("working on network file", log.Str("path", path))

	opts.Logger = logger.With("path", path)
	return Parse(f, opts)
}

// Parse reads a network definition from r.
//
// A malformed record stops the parse immediately with a CodeInvalidArgument
// error. Duplicate names are logged as they are found and the parse carries
// on, so that every duplicate is reported; once the input is exhausted a
// single CodeAlreadyExists error lists them in its details.
func Parse(r io.Reader, opts Options) (*Registry, error) {
	logger := log.OrNop(opts.Logger)
	reg := NewRegistry()
	lr := NewLineReader(r)

	var duplicates []any
	for lr.Next() {
		fields := lr.Fields()

		rec, err := ParseRecord(fields, opts.Defines)
		if err != nil {
			logger.Error(err, "malformed record", log.Int("line", lr.Line()), log.Strs("fields", fields))
			return nil, errors.Build(errors.CodeInvalidArgument).
				WithOp("netfile.Parse").
				WithMsgf("line %d", lr.Line()).
				WithErr(err).
				Err()
		}

		switch v := rec.(type) {
		case UnusedVar:
			logger.Debug("skipping auxiliary variable",
				log.Str("name", v.Name), log.Str("requires", "-D"+v.Preprocessor))
			continue
		case Species, AuxVar:
			if err := reg.Insert(v); err != nil {
				logger.Error(err, "duplicate definition", log.Int("line", lr.Line()))
				duplicates = append(duplicates, errors.DetailsOf(err)...)
			}
		}
	}

	if err := lr.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "netfile.Parse", err)
	}

	if len(duplicates) > 0 {
		return nil, errors.Build(errors.CodeAlreadyExists).
			WithOp("netfile.Parse").
			WithMsgf("%d duplicate definition(s)", len(duplicates)).
			WithDetails(duplicates...).
			Err()
	}

	logger.Debug("parsed network",
		log.Int("species", reg.NumSpecies()), log.Int("aux_vars", reg.NumAux()))
	return reg, nil
}
