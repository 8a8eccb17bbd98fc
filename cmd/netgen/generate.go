package main

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
	"go.eggybyte.com/netgen/internal/config"
	"go.eggybyte.com/netgen/internal/generator"
	"go.eggybyte.com/netgen/internal/version"
	"go.eggybyte.com/netgen/obsx"
)

// generateFlags use the flag spelling that existing build scripts pass.
type generateFlags struct {
	template       string
	output         string
	headerTemplate string
	headerOutput   string
	network        string
	properties     string
	defines        string
	metricsFile    string
}

func addGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	fs := cmd.Flags()
	fs.StringVarP(&f.template, "template", "t", "", "Fortran template for the network")
	fs.StringVarP(&f.output, "output", "o", "", "Fortran module output file name")
	fs.StringVar(&f.headerTemplate, "header_template", "", "C++ header template file name")
	fs.StringVar(&f.headerOutput, "header_output", "", "C++ header output file name")
	fs.StringVarP(&f.network, "network", "s", "", "Network file name")
	fs.StringVar(&f.properties, "other_properties", "", "NETWORK_PROPERTIES file with other network properties")
	fs.StringVar(&f.defines, "defines", "", "Preprocessor defines used to build the code, e.g. \"-DAUX_THERMO\"")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
}

// overrides turns the flags that were set into a config overlay.
func (f *generateFlags) overrides(cmd *cobra.Command) config.Config {
	o := config.Config{
		NetworkFile:    f.network,
		PropertiesFile: f.properties,
		Fortran:        config.Output{Template: f.template, Output: f.output},
		CXX:            config.CXXOutput{Template: f.headerTemplate, Output: f.headerOutput},
		MetricsFile:    f.metricsFile,
	}
	if cmd.Flags().Changed("defines") {
		o.Defines = config.DefineList(strings.Fields(f.defines))
		if o.Defines == nil {
			o.Defines = config.DefineList{}
		}
	}
	return o
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Expand the Fortran and C++ templates for a network",
		Long: `Parse the network file, load the optional properties file and write the
Fortran module and the C++ header generated from their templates.

On any error the Fortran output is replaced by a stub that fails compilation
and the command exits with status 1.

Inputs may come from flags, from a --config manifest, or from NETGEN_*
environment variables, in that order of precedence.

Example:
  netgen generate -t network_properties.template -o network_properties.F90 \
    --header_template network_properties.H.template --header_output network_properties.H \
    -s aprox13.net --defines "-DAUX_THERMO"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, f)
		},
	}
	addGenerateFlags(cmd, f)
	return cmd
}

// resolveConfig merges the manifest, the flags and the environment. Flags win
// over the manifest; the environment only fills fields still unset.
func resolveConfig(cmd *cobra.Command, g *globalFlags, f *generateFlags) (*config.Config, *config.Diagnostics, error) {
	cfg, diags, err := loadManifest(g)
	if err != nil {
		return nil, diags, err
	}
	cfg.Override(f.overrides(cmd))
	if err := cfg.ApplyEnv(g.environ); err != nil {
		return nil, diags, err
	}
	return cfg, diags, nil
}

func runGenerate(cmd *cobra.Command, g *globalFlags, f *generateFlags) error {
	cfg, diags, err := resolveConfig(cmd, g, f)
	if err != nil {
		return generator.New().Abort(f.output, err)
	}

	logger, err := newLogger(cmd, g, cfg.LogFormat)
	if err != nil {
		return generator.New().Abort(cfg.Fortran.Output, err)
	}
	logger = logger.With("run_id", uuid.New().String())
	reportDiagnostics(logger, diags)

	start := time.Now()
	res, err := generator.New(generator.WithLogger(logger)).Run(cfg)
	if cfg.MetricsFile != "" {
		writeMetrics(cmd.Context(), logger, cfg, res, err, time.Since(start))
	}
	if err != nil {
		return err
	}

	logger.Debug("generation complete",
		log.Int("species", res.Registry.NumSpecies()),
		log.Int("aux_vars", res.Registry.NumAux()),
		log.Int("properties", res.Properties.Len()))
	return nil
}

// writeMetrics exports the outcome of a run. A metrics failure is logged and
// never fails the generation itself.
func writeMetrics(ctx context.Context, logger log.Logger, cfg *config.Config, res *generator.Result, runErr error, d time.Duration) {
	if ctx == nil {
		ctx = context.Background()
	}
	path := cfg.MetricsFile

	provider, err := obsx.NewProvider(ctx, obsx.Options{
		ServiceName:    "netgen",
		ServiceVersion: version.Version,
		ResourceAttrs:  map[string]string{"network": filepath.Base(cfg.NetworkFile)},
	})
	if err != nil {
		logger.Warn("metrics disabled", log.Str("reason", err.Error()))
		return
	}
	defer provider.Shutdown(ctx)

	g := obsx.Generation{Duration: d}
	if runErr != nil {
		g.Code = string(errors.CodeOf(runErr))
		if g.Code == "" {
			g.Code = string(errors.CodeInternal)
		}
	} else {
		g.Species = res.Registry.NumSpecies()
		g.AuxVars = res.Registry.NumAux()
		g.Properties = res.Properties.Len()
	}
	provider.RecordGeneration(ctx, g)

	if err := provider.WriteTextfile(path); err != nil {
		logger.Warn("cannot write metrics", log.Str("path", path), log.Str("reason", err.Error()))
		return
	}
	logger.Debug("wrote metrics", log.Str("path", path))
}
