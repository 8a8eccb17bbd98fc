// Package netfile parses network definition files into an ordered registry
// of species and auxiliary variables.
//
// Overview:
//   - Responsibility: Comment stripping, record classification, duplicate detection
//   - Key Types: LineReader, Record (Species, AuxVar, UnusedVar), Registry, Defines
//   - Concurrency Model: Single pass, single goroutine; a Registry is not shared
//   - Error Semantics: Malformed records abort the parse; duplicates are collected
//     and reported together once the whole file has been read
//   - Performance Notes: One bufio scan over the input, map-backed name lookup
//
// File format:
//
//	# comment
//	He4   he4   4.0   2.0        # name short_name A Z
//	__aux_rho                    # always present
//	__aux_temp  REACT_SDC        # present only with -DREACT_SDC
//
// Usage:
//
//	reg, err := netfile.Load("species.net", netfile.Options{
//	    Defines: netfile.ParseDefines("-DREACT_SDC"),
//	    Logger:  logger,
//	})
package netfile
