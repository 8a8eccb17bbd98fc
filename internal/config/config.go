// Package config loads and validates the run configuration of the generator.
//
// Overview:
//   - Responsibility: Parse the optional netgen.yaml manifest, merge flag and
//     environment overrides, validate the result
//   - Key Types: Config, Output, DefineList, Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Manifest problems are collected as diagnostics; an
//     invalid merged configuration is a CodeInvalidArgument error
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	cfg, diags := config.Load("netgen.yaml")
//	if diags.HasErrors() {
//	    return diags.Err()
//	}
//	cfg.Override(flags)
//	if err := cfg.Validate(); err != nil { ... }
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go.eggybyte.com/netgen/configx"
	"go.eggybyte.com/netgen/core/errors"
)

// EnvPrefix prefixes every environment variable the generator reads.
const EnvPrefix = "NETGEN_"

// Config is a complete generator run.
type Config struct {
	NetworkFile    string     `yaml:"network_file" env:"NETGEN_NETWORK_FILE" validate:"required"`
	PropertiesFile string     `yaml:"properties_file" env:"NETGEN_PROPERTIES_FILE"`
	Defines        DefineList `yaml:"defines" env:"NETGEN_DEFINES"`
	Fortran        Output     `yaml:"fortran"`
	CXX            CXXOutput  `yaml:"cxx"`
	LogFormat      string     `yaml:"log_format" env:"NETGEN_LOG_FORMAT" validate:"omitempty,oneof=logfmt json"`
	MetricsFile    string     `yaml:"metrics_file" env:"NETGEN_METRICS_FILE"`
}

// Output pairs the Fortran template with the file generated from it.
type Output struct {
	Template string `yaml:"template" env:"NETGEN_FORTRAN_TEMPLATE" validate:"required"`
	Output   string `yaml:"output" env:"NETGEN_FORTRAN_OUTPUT" validate:"required"`
}

// CXXOutput pairs the C++ header template with the header generated from it.
type CXXOutput struct {
	Template string `yaml:"template" env:"NETGEN_CXX_TEMPLATE" validate:"required"`
	Output   string `yaml:"output" env:"NETGEN_CXX_OUTPUT" validate:"required"`
}

// DefineList holds define tokens such as "-DAUX_THERMO". In a manifest it may
// be written as one whitespace-separated string or as a list.
type DefineList []string

// UnmarshalYAML accepts both a scalar and a sequence.
func (d *DefineList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*d = strings.Fields(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		var tokens []string
		for _, item := range items {
			tokens = append(tokens, strings.Fields(item)...)
		}
		*d = tokens
		return nil
	default:
		return fmt.Errorf("line %d: defines must be a string or a list of strings", node.Line)
	}
}

// Load reads a manifest. Relative paths inside the manifest are resolved
// against the manifest's directory.
//
// Parameters:
//   - path: Path to the manifest file
//
// Returns:
//   - *Config: Parsed configuration, nil when the file cannot be used
//   - *Diagnostics: Issues found while loading
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			diags.AddError("Manifest not found", path, "Pass the inputs as flags or create netgen.yaml")
			return nil, diags
		}
		diags.AddError(fmt.Sprintf("Failed to read manifest: %v", err), path, "Check file permissions")
		return nil, diags
	}

	cfg, err := Parse(data)
	if err != nil {
		diags.AddError(fmt.Sprintf("Failed to parse YAML: %v", err), path, "Check YAML syntax and field names")
		return nil, diags
	}

	cfg.resolvePaths(filepath.Dir(path))
	checkDefines(cfg, diags)

	return cfg, diags
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{
		&c.NetworkFile,
		&c.PropertiesFile,
		&c.Fortran.Template,
		&c.Fortran.Output,
		&c.CXX.Template,
		&c.CXX.Output,
		&c.MetricsFile,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func checkDefines(cfg *Config, diags *Diagnostics) {
	for _, token := range cfg.Defines {
		if !strings.HasPrefix(token, "-D") {
			diags.AddWarning(
				fmt.Sprintf("define %q does not start with -D and will never match", token),
				"defines",
				fmt.Sprintf("Write it as -D%s", token),
			)
		}
	}
}

// Override replaces every field of c with the corresponding non-empty field
// of o. Flags are applied this way on top of the manifest.
func (c *Config) Override(o Config) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.NetworkFile, o.NetworkFile)
	set(&c.PropertiesFile, o.PropertiesFile)
	set(&c.Fortran.Template, o.Fortran.Template)
	set(&c.Fortran.Output, o.Fortran.Output)
	set(&c.CXX.Template, o.CXX.Template)
	set(&c.CXX.Output, o.CXX.Output)
	set(&c.LogFormat, o.LogFormat)
	set(&c.MetricsFile, o.MetricsFile)
	if o.Defines != nil {
		c.Defines = o.Defines
	}
}

// ApplyEnv fills fields still unset from NETGEN_* environment variables taken
// from environ (os.Environ when nil).
func (c *Config) ApplyEnv(environ func() []string) error {
	snapshot := configx.EnvSnapshot(configx.EnvOptions{Prefix: EnvPrefix, Environ: environ})
	if err := configx.BindEnv(snapshot, c); err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "config.ApplyEnv", err)
	}
	return nil
}

// Validate checks that every required input and output is named.
func (c *Config) Validate() error {
	v := configx.NewValidator(configx.WithYAMLFieldNames())
	if err := configx.ValidateStruct(v, c); err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "config.Validate", err)
	}
	return nil
}
