package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/core/log"
	"go.eggybyte.com/netgen/internal/config"
	"go.eggybyte.com/netgen/internal/version"
	"go.eggybyte.com/netgen/logx"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose    bool
	logFormat  string
	color      bool
	timestamps bool
	configPath string
	environ    func() []string
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(&globalFlags{environ: os.Environ})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "netgen: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(g *globalFlags) *cobra.Command {
	gen := &generateFlags{}

	root := &cobra.Command{
		Use:   "netgen",
		Short: "Generate network property sources from a network definition",
		Long: `netgen reads nuclear species and auxiliary variables from a network file
and expands the @@KEYWORD@@ placeholders of a Fortran template and a C++
header template.

Invoked without a subcommand it behaves like "netgen generate", so the
flags passed by existing build scripts keep working.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, gen)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "V", false, "Enable debug logging")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: logfmt or json")
	pf.BoolVar(&g.color, "color", false, "Colorize log levels")
	pf.BoolVar(&g.timestamps, "timestamps", false, "Add a time field to log lines")
	pf.StringVar(&g.configPath, "config", "", "Optional netgen.yaml run manifest")

	addGenerateFlags(root, gen)

	root.AddCommand(
		newGenerateCmd(g),
		newInspectCmd(g),
		newVersionCmd(),
	)
	return root
}

// loadManifest reads the --config manifest if one was given.
func loadManifest(g *globalFlags) (*config.Config, *config.Diagnostics, error) {
	if g.configPath == "" {
		return &config.Config{}, config.NewDiagnostics(), nil
	}
	cfg, diags := config.Load(g.configPath)
	if diags.HasErrors() {
		return nil, diags, diags.Err()
	}
	return cfg, diags, nil
}

// newLogger builds the logger from the global flags. A format given on the
// command line wins over the manifest's.
func newLogger(cmd *cobra.Command, g *globalFlags, manifestFormat string) (log.Logger, error) {
	raw := g.logFormat
	if raw == "" {
		raw = manifestFormat
	}
	format, err := logx.ParseFormat(raw)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, "netgen.newLogger", err)
	}

	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	return logx.New(
		logx.WithFormat(format),
		logx.WithLevel(level),
		logx.WithColor(g.color),
		logx.WithTimestamp(g.timestamps),
		logx.WithWriter(cmd.ErrOrStderr()),
	), nil
}

func reportDiagnostics(logger log.Logger, diags *config.Diagnostics) {
	for _, d := range diags.Items() {
		if d.Severity == config.SeverityWarning {
			logger.Warn(d.Message, log.Str("path", d.Path), log.Str("suggestion", d.Suggestion))
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show netgen version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
