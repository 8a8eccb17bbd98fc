package expander

import (
	"bytes"
	"strings"
	"testing"

	"go.eggybyte.com/netgen/internal/netfile"
	"go.eggybyte.com/netgen/internal/properties"
	"go.eggybyte.com/netgen/testingx"
)

func smallNetwork() Data {
	return Data{
		Species: []netfile.Species{{Name: "He4", ShortName: "he4", A: 4, Z: 2}},
		AuxVars: []netfile.AuxVar{{Name: "rho"}},
	}
}

func threeSpecies() Data {
	return Data{
		Species: []netfile.Species{
			{Name: "H1", ShortName: "p", A: 1, Z: 1},
			{Name: "He4", ShortName: "he4", A: 4, Z: 2},
			{Name: "C12", ShortName: "c12", A: 12, Z: 6},
		},
		AuxVars: []netfile.AuxVar{{Name: "Ye"}, {Name: "abar", Preprocessor: "AUX_THERMO"}},
	}
}

func TestExpand_SmallNetwork(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		template string
		want     string
	}{
		{"nspec fortran", Fortran, "integer, parameter :: nspec = @@NSPEC@@\n", "integer, parameter :: nspec = 1\n"},
		{"naux cxx", CXX, "constexpr int NumAux = @@NAUX@@;\n", "constexpr int NumAux = 1;\n"},
		{"spec names cxx", CXX, "@@SPEC_NAMES@@\n", "\"He4\",   // 0 \n"},
		{"spec names fortran", Fortran, "@@SPEC_NAMES@@\n", "spec_names(1) = \"He4\"\n"},
		{"species enum", CXX, "@@SPECIES_ENUM@@\n", "He4=1,\nNumberSpecies=He4\n"},
		{"aux enum", CXX, "@@AUXZERO_ENUM@@\n", "irho=0,\nNumberAux=irho\n"},
		{"aion fortran", Fortran, "@@AION@@\n", "aion(1) = 4.0_rt\n"},
		{"aion inv cxx", CXX, "@@AION_INV@@\n", "1.0/4.0,   // 0 \n"},
		{"zion cxx", CXX, "@@ZION@@\n", "2.0,   // 0\n"},
		{"enum in fortran", Fortran, "@@SPECIES_ENUM@@\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.target, smallNetwork()).ExpandString(tt.template)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpand_Indentation(t *testing.T) {
	got := New(Fortran, threeSpecies()).ExpandString("    @@ZION@@\n")
	want := "    zion(1) = 1.0_rt\n    zion(2) = 2.0_rt\n    zion(3) = 6.0_rt\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpand_OrderPreserved(t *testing.T) {
	got := New(CXX, threeSpecies()).ExpandString("  @@SPECIES_ENUM@@\n")
	want := "  P=1,\n  He4,\n  C12,\n  NumberSpecies=C12\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = New(Fortran, threeSpecies()).ExpandString("@@SHORT_AUX_NAMES@@\n")
	want = "short_aux_names(1) = \"Ye\"\nshort_aux_names(2) = \"abar\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpand_VerbatimLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"plain", "module network_properties\n"},
		{"single marker", "! see @@ for placeholders\n"},
		{"overlapping markers", "x = @@@\n"},
		{"no trailing newline", "end module"},
		{"crlf", "contains\r\n"},
	}

	exp := New(Fortran, smallNetwork())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exp.ExpandString(tt.line); got != tt.line {
				t.Errorf("got %q, want %q", got, tt.line)
			}
		})
	}
}

func TestExpand_UnknownKeyword(t *testing.T) {
	logger := testingx.NewMockLogger(t)
	exp := New(CXX, smallNetwork(), WithLogger(logger))

	got := exp.ExpandString("a\n@@NOT_A_KEYWORD@@\nb\n")
	if got != "a\nb\n" {
		t.Errorf("got %q", got)
	}
	logger.AssertLogged("DEBUG", "ignoring unknown placeholder")
}

func TestExpand_Properties(t *testing.T) {
	props := properties.New()
	props.Set("use_tables", "1")
	props.Set("npassive", "0")
	props.Set("use_tables", "0")

	d := smallNetwork()
	d.Properties = props

	got := New(CXX, d).ExpandString("  @@PROPERTIES@@\n")
	want := "  constexpr int use_tables = 0;\n  constexpr int npassive = 0;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := New(Fortran, d).ExpandString("@@PROPERTIES@@\n"); got != "" {
		t.Errorf("fortran properties should be empty, got %q", got)
	}
	if got := New(CXX, smallNetwork()).ExpandString("@@PROPERTIES@@\n"); got != "" {
		t.Errorf("nil properties should expand to nothing, got %q", got)
	}
}

func TestExpand_EmptyNetwork(t *testing.T) {
	exp := New(CXX, Data{})
	for _, kw := range Keywords() {
		if kw == NSpec || kw == NAux {
			continue
		}
		if got := exp.ExpandString(Marker + string(kw) + Marker + "\n"); got != "" {
			t.Errorf("%s: expected no output for an empty network, got %q", kw, got)
		}
	}
	if got := exp.ExpandString("n = @@NSPEC@@\n"); got != "n = 0\n" {
		t.Errorf("got %q", got)
	}
}

func TestExpand_CRLFTemplate(t *testing.T) {
	tmpl := "enum {\r\n  @@SPECIES_ENUM@@\r\n};\r\nconstexpr int NumSpec = @@NSPEC@@;\r\n"
	want := "enum {\r\n" +
		"  P=1,\r\n" +
		"  He4,\r\n" +
		"  C12,\r\n" +
		"  NumberSpecies=C12\r\n" +
		"};\r\n" +
		"constexpr int NumSpec = 3;\r\n"

	if got := New(CXX, threeSpecies()).ExpandString(tmpl); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpand_LastLineWithoutTerminator(t *testing.T) {
	got := New(Fortran, smallNetwork()).ExpandString("@@AUX_NAMES@@")
	if want := "aux_names(1) = \"rho\"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpand_Idempotent(t *testing.T) {
	tmpl := "module network\n  @@SPEC_NAMES@@\n  @@AION@@\nend module\n"
	exp := New(Fortran, threeSpecies())

	var first, second bytes.Buffer
	testingx.AssertNoError(t, exp.Expand(&first, strings.NewReader(tmpl)))
	testingx.AssertNoError(t, exp.Expand(&second, strings.NewReader(tmpl)))

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("expansion is not deterministic:\n%s\n---\n%s", first.String(), second.String())
	}
}

func TestFindPlaceholder(t *testing.T) {
	tests := []struct {
		line    string
		keyword Keyword
		indent  string
		ok      bool
	}{
		{"@@NSPEC@@", NSpec, "", true},
		{"  @@AION@@ trailing", AIon, "  ", true},
		{"x = @@NSPEC@@ + @@NAUX@@", Keyword("NSPEC@@ + @@NAUX"), "    ", true},
		{"@@@@", Keyword(""), "", true},
		{"@@@", "", "", false},
		{"none", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ph, ok := findPlaceholder(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ph.keyword != tt.keyword || ph.indent != tt.indent {
				t.Errorf("got keyword %q indent %q", ph.keyword, ph.indent)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	if Fortran.String() != "fortran" || CXX.String() != "cxx" {
		t.Errorf("unexpected names %s %s", Fortran, CXX)
	}
	if got := numTargets.String(); got != "Target(2)" {
		t.Errorf("numTargets.String() = %q", got)
	}
}
