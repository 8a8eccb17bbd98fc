// Package obsx records generation metrics with OpenTelemetry and exports them
// in Prometheus text format.
//
// # Overview
//
// A generator run is a short-lived process, so there is nothing to scrape.
// Instead the Provider writes its metrics to a file that the node_exporter
// textfile collector (or any CI step) picks up after the build.
//
// # Features
//
//   - Meter provider backed by a private Prometheus registry
//   - Run outcome counter labelled with the error code
//   - Species, aux variable and property gauges
//   - Run duration histogram
//   - Atomic textfile export
//
// # Usage
//
//	provider, err := obsx.NewProvider(ctx, obsx.Options{
//		ServiceName:    "netgen",
//		ServiceVersion: version.Version,
//	})
//	if err != nil { return err }
//	defer provider.Shutdown(ctx)
//
//	provider.RecordGeneration(ctx, obsx.Generation{Species: 13, Duration: d})
//	err = provider.WriteTextfile("netgen.prom")
package obsx
