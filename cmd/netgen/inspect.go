package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/internal/netfile"
)

type inspectFlags struct {
	network string
	defines string
	format  string
}

// inventory is the YAML form of a parsed network.
type inventory struct {
	Network string            `yaml:"network"`
	Defines []string          `yaml:"defines,omitempty"`
	Species []netfile.Species `yaml:"species"`
	AuxVars []netfile.AuxVar  `yaml:"aux_vars"`
}

func newInspectCmd(g *globalFlags) *cobra.Command {
	f := &inspectFlags{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse a network file and print its species and aux variables",
		Long: `Parse a network file with the given defines and print what a generation
would see. No output file is touched, even when parsing fails.

Example:
  netgen inspect -s aprox13.net --defines "-DAUX_THERMO" --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, g, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.network, "network", "s", "", "Network file name")
	fs.StringVar(&f.defines, "defines", "", "Preprocessor defines, e.g. \"-DAUX_THERMO\"")
	fs.StringVar(&f.format, "format", "table", "Output format: table or yaml")
	return cmd
}

func runInspect(cmd *cobra.Command, g *globalFlags, f *inspectFlags) error {
	cfg, diags, err := loadManifest(g)
	if err != nil {
		return err
	}
	if f.network != "" {
		cfg.NetworkFile = f.network
	}
	if cmd.Flags().Changed("defines") {
		cfg.Defines = strings.Fields(f.defines)
	}
	if err := cfg.ApplyEnv(g.environ); err != nil {
		return err
	}
	if cfg.NetworkFile == "" {
		return errors.New(errors.CodeInvalidArgument, "network file is required (-s or network_file)")
	}

	logger, err := newLogger(cmd, g, cfg.LogFormat)
	if err != nil {
		return err
	}
	reportDiagnostics(logger, diags)

	defines := netfile.NewDefines(cfg.Defines...)
	reg, err := netfile.Load(cfg.NetworkFile, netfile.Options{
		Defines: defines,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	inv := inventory{
		Network: cfg.NetworkFile,
		Defines: defines.Tokens(),
		Species: reg.Species(),
		AuxVars: reg.AuxVars(),
	}

	switch f.format {
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), inv)
	case "table", "":
		return writeTable(cmd.OutOrStdout(), inv)
	default:
		return errors.Build(errors.CodeInvalidArgument).
			WithOp("netgen.inspect").
			WithMsgf("unknown format %q (want table or yaml)", f.format).
			Err()
	}
}

func writeYAML(w io.Writer, inv inventory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(inv); err != nil {
		return errors.Wrap(errors.CodeInternal, "netgen.inspect", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, inv inventory) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "#\tSPECIES\tSHORT\tA\tZ\n")
	for i, s := range inv.Species {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, s.Name, s.ShortName, netfile.FormatNumber(s.A), netfile.FormatNumber(s.Z))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "#\tAUX\tREQUIRES\n")
	for i, a := range inv.AuxVars {
		requires := "-"
		if a.Preprocessor != "" {
			requires = "-D" + a.Preprocessor
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, a.Name, requires)
	}

	return tw.Flush()
}
