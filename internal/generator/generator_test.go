package generator

import (
	"os"
	"path/filepath"
	"testing"

	"go.eggybyte.com/netgen/core/errors"
	"go.eggybyte.com/netgen/internal/config"
	"go.eggybyte.com/netgen/testingx"
)

const fortranTemplate = `module network_properties
  integer, parameter :: nspec = @@NSPEC@@
  integer, parameter :: naux = @@NAUX@@
contains
  subroutine network_properties_init
    @@SPEC_NAMES@@
    @@AION@@
  end subroutine
end module
`

const headerTemplate = `#ifndef NETWORK_PROPERTIES_H
#define NETWORK_PROPERTIES_H
constexpr int NumSpec = @@NSPEC@@;
@@PROPERTIES@@
namespace Species {
  enum NetworkSpecies : int {
    @@SPECIES_ENUM@@
  };
}
#endif
`

func setup(t *testing.T, network string) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		NetworkFile: testingx.WriteFile(t, dir, "net", network),
		Fortran: config.Output{
			Template: testingx.WriteFile(t, dir, "network_properties.template", fortranTemplate),
			Output:   filepath.Join(dir, "network_properties.F90"),
		},
		CXX: config.CXXOutput{
			Template: testingx.WriteFile(t, dir, "network_properties.H.template", headerTemplate),
			Output:   filepath.Join(dir, "network_properties.H"),
		},
	}, dir
}

func TestRun(t *testing.T) {
	cfg, dir := setup(t, "He4 he4 4.0 2.0\nC12 c12 12.0 6.0\n__aux_rho\n__aux_temp SOME_FLAG\n")
	cfg.PropertiesFile = testingx.WriteFile(t, dir, "NETWORK_PROPERTIES", "use_tables := 1\n")

	logger := testingx.NewMockLogger(t)
	res, err := New(WithLogger(logger)).Run(cfg)
	testingx.AssertNoError(t, err)

	if len(res.Written) != 2 {
		t.Errorf("written = %v", res.Written)
	}

	wantF90 := `module network_properties
  integer, parameter :: nspec = 2
  integer, parameter :: naux = 1
contains
  subroutine network_properties_init
    spec_names(1) = "He4"
    spec_names(2) = "C12"
    aion(1) = 4.0_rt
    aion(2) = 12.0_rt
  end subroutine
end module
`
	if got := testingx.ReadFile(t, cfg.Fortran.Output); got != wantF90 {
		t.Errorf("fortran output:\n%s", got)
	}

	wantH := `#ifndef NETWORK_PROPERTIES_H
#define NETWORK_PROPERTIES_H
constexpr int NumSpec = 2;
constexpr int use_tables = 1;
namespace Species {
  enum NetworkSpecies : int {
    He4=1,
    C12,
    NumberSpecies=C12
  };
}
#endif
`
	if got := testingx.ReadFile(t, cfg.CXX.Output); got != wantH {
		t.Errorf("header output:\n%s", got)
	}

	logger.AssertLogged("INFO", "working on network file")
	logger.AssertLogged("INFO", "writing "+cfg.Fortran.Output)
	logger.AssertLogged("INFO", "writing "+cfg.CXX.Output)
}

func TestRun_DuplicateWritesStub(t *testing.T) {
	cfg, _ := setup(t, "He4 he4 4.0 2.0\nHe4 he4 4.0 2.0\n")

	_, err := New().Run(cfg)
	testingx.AssertError(t, err, errors.CodeAlreadyExists)

	if got := testingx.ReadFile(t, cfg.Fortran.Output); got != StubText {
		t.Errorf("expected stub, got %q", got)
	}
	if _, err := os.Stat(cfg.CXX.Output); !os.IsNotExist(err) {
		t.Error("header must not be written after a failed parse")
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testing.T, *config.Config, string)
		code   errors.Code
	}{
		{
			name:   "missing network file",
			mutate: func(t *testing.T, c *config.Config, dir string) { c.NetworkFile = filepath.Join(dir, "nope") },
			code:   errors.CodeNotFound,
		},
		{
			name:   "missing header template",
			mutate: func(t *testing.T, c *config.Config, dir string) { c.CXX.Template = filepath.Join(dir, "nope.template") },
			code:   errors.CodeNotFound,
		},
		{
			name: "malformed properties",
			mutate: func(t *testing.T, c *config.Config, dir string) {
				c.PropertiesFile = testingx.WriteFile(t, dir, "props", "no separator here\n")
			},
			code: errors.CodeInvalidArgument,
		},
		{
			name:   "missing header output",
			mutate: func(t *testing.T, c *config.Config, dir string) { c.CXX.Output = "" },
			code:   errors.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, dir := setup(t, "He4 he4 4.0 2.0\n")
			tt.mutate(t, cfg, dir)

			_, err := New().Run(cfg)
			testingx.AssertError(t, err, tt.code)

			if got := testingx.ReadFile(t, cfg.Fortran.Output); got != StubText {
				t.Errorf("expected stub, got %q", got)
			}
		})
	}
}

func TestRun_MissingPropertiesEqualsEmpty(t *testing.T) {
	cfg, dir := setup(t, "He4 he4 4.0 2.0\n")
	cfg.PropertiesFile = filepath.Join(dir, "NETWORK_PROPERTIES")

	logger := testingx.NewMockLogger(t)
	_, err := New(WithLogger(logger)).Run(cfg)
	testingx.AssertNoError(t, err)
	missing := testingx.ReadFile(t, cfg.CXX.Output)
	logger.AssertLogged("WARN", "no network properties found, skipping")

	testingx.WriteFile(t, dir, "NETWORK_PROPERTIES", "")
	_, err = New().Run(cfg)
	testingx.AssertNoError(t, err)

	if empty := testingx.ReadFile(t, cfg.CXX.Output); empty != missing {
		t.Errorf("missing and empty properties differ:\n%s\n---\n%s", missing, empty)
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg, _ := setup(t, "H1 p 1.0 1.0\nHe4 he4 4.0 2.0\n__aux_Ye\n")

	gen := New()
	_, err := gen.Run(cfg)
	testingx.AssertNoError(t, err)
	first := testingx.ReadFile(t, cfg.Fortran.Output) + testingx.ReadFile(t, cfg.CXX.Output)

	_, err = gen.Run(cfg)
	testingx.AssertNoError(t, err)
	second := testingx.ReadFile(t, cfg.Fortran.Output) + testingx.ReadFile(t, cfg.CXX.Output)

	if first != second {
		t.Error("re-running with the same inputs changed the output")
	}
}

func TestAbort_NoOutputPath(t *testing.T) {
	cause := errors.New(errors.CodeInvalidArgument, "bad")
	if err := New().Abort("", cause); err != cause {
		t.Errorf("Abort should return the cause, got %v", err)
	}
}
