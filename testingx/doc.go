// Package testingx provides testing helpers and fakes for netgen packages.
//
// # Overview
//
// testingx contains small utilities to speed up unit tests: a mock logger
// with capture and assertions, fixture-file helpers, and assertions for
// core/errors codes.
//
// # Usage
//
//	logger := testingx.NewMockLogger(t)
//	path := testingx.WriteFile(t, t.TempDir(), "species.net", "He4 he4 4.0 2.0\n")
//	testingx.AssertError(t, err, errors.CodeAlreadyExists)
//
// # Layer
//
// testingx is imported by _test.go files only.
package testingx
