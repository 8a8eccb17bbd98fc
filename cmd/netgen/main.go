// Package main provides the netgen command line tool.
//
// Overview:
//   - Responsibility: Flag parsing, manifest and environment resolution,
//     logger construction, dispatch to the generator
//   - Key Types: Cobra command tree (root, generate, inspect, version)
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Any failure exits with status 1; generation failures
//     leave the stub in the Fortran output
//   - Performance Notes: One pass over each input file
//
// Usage:
//
//	netgen -t network_properties.template -o network_properties.F90 \
//	    --header_template network_properties.H.template --header_output network_properties.H \
//	    -s aprox13.net --other_properties NETWORK_PROPERTIES --defines "-DAUX_THERMO"
//	netgen inspect -s aprox13.net --format yaml
package main

import (
	"os"
)

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}
