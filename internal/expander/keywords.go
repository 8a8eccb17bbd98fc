package expander

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.eggybyte.com/netgen/internal/netfile"
)

// Keyword is the name found between a pair of markers.
type Keyword string

// Recognized keywords.
const (
	NSpec          Keyword = "NSPEC"
	NAux           Keyword = "NAUX"
	SpecNames      Keyword = "SPEC_NAMES"
	ShortSpecNames Keyword = "SHORT_SPEC_NAMES"
	AIon           Keyword = "AION"
	AIonInv        Keyword = "AION_INV"
	ZIon           Keyword = "ZION"
	AuxNames       Keyword = "AUX_NAMES"
	ShortAuxNames  Keyword = "SHORT_AUX_NAMES"
	PropertiesKw   Keyword = "PROPERTIES"
	SpeciesEnum    Keyword = "SPECIES_ENUM"
	AuxZeroEnum    Keyword = "AUXZERO_ENUM"
)

// Sentinel enumerators closing the enumeration blocks.
const (
	NumberSpecies = "NumberSpecies"
	NumberAux     = "NumberAux"
)

var keywords = []Keyword{
	NSpec, NAux,
	SpecNames, ShortSpecNames,
	AIon, AIonInv, ZIon,
	AuxNames, ShortAuxNames,
	PropertiesKw,
	SpeciesEnum, AuxZeroEnum,
}

// Keywords returns every recognized keyword.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywords))
	copy(out, keywords)
	return out
}

// placeholder is a keyword found on a template line.
type placeholder struct {
	keyword Keyword
	line    string // the full template line, terminator included
	indent  string // spaces matching the column of the opening marker
	eol     string // terminator for generated lines, taken from the line
}

// emitFunc writes the expansion of one placeholder.
type emitFunc func(b *strings.Builder, ph placeholder, d *Data)

// emitters maps every keyword to its expansion for each target. Targets that
// have no use for a keyword map to emitNothing, so the table stays total.
var emitters = map[Keyword][numTargets]emitFunc{
	NSpec: {
		Fortran: inlineCount(func(d *Data) int { return len(d.Species) }),
		CXX:     inlineCount(func(d *Data) int { return len(d.Species) }),
	},
	NAux: {
		Fortran: inlineCount(func(d *Data) int { return len(d.AuxVars) }),
		CXX:     inlineCount(func(d *Data) int { return len(d.AuxVars) }),
	},
	SpecNames: {
		Fortran: eachSpecies(func(s netfile.Species, i int) string { return fmt.Sprintf("spec_names(%d) = \"%s\"", i+1, s.Name) }),
		CXX:     eachSpecies(func(s netfile.Species, i int) string { return fmt.Sprintf("\"%s\",   // %d ", s.Name, i) }),
	},
	ShortSpecNames: {
		Fortran: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("short_spec_names(%d) = \"%s\"", i+1, s.ShortName)
		}),
		CXX: eachSpecies(func(s netfile.Species, i int) string { return fmt.Sprintf("\"%s\",   // %d ", s.ShortName, i) }),
	},
	AIon: {
		Fortran: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("aion(%d) = %s_rt", i+1, netfile.FormatNumber(s.A))
		}),
		CXX: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("%s,   // %d ", netfile.FormatNumber(s.A), i)
		}),
	},
	AIonInv: {
		Fortran: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("aion_inv(%d) = 1.0_rt/%s_rt", i+1, netfile.FormatNumber(s.A))
		}),
		CXX: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("1.0/%s,   // %d ", netfile.FormatNumber(s.A), i)
		}),
	},
	ZIon: {
		Fortran: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("zion(%d) = %s_rt", i+1, netfile.FormatNumber(s.Z))
		}),
		CXX: eachSpecies(func(s netfile.Species, i int) string {
			return fmt.Sprintf("%s,   // %d", netfile.FormatNumber(s.Z), i)
		}),
	},
	AuxNames: {
		Fortran: eachAux(func(a netfile.AuxVar, i int) string { return fmt.Sprintf("aux_names(%d) = \"%s\"", i+1, a.Name) }),
		CXX:     eachAux(func(a netfile.AuxVar, i int) string { return fmt.Sprintf("\"%s\",   // %d ", a.Name, i) }),
	},
	ShortAuxNames: {
		Fortran: eachAux(func(a netfile.AuxVar, i int) string {
			return fmt.Sprintf("short_aux_names(%d) = \"%s\"", i+1, a.Name)
		}),
		CXX: eachAux(func(a netfile.AuxVar, i int) string { return fmt.Sprintf("\"%s\",   // %d ", a.Name, i) }),
	},
	PropertiesKw: {
		Fortran: emitNothing,
		CXX:     emitProperties,
	},
	SpeciesEnum: {
		Fortran: emitNothing,
		CXX:     emitSpeciesEnum,
	},
	AuxZeroEnum: {
		Fortran: emitNothing,
		CXX:     emitAuxZeroEnum,
	},
}

func emitNothing(*strings.Builder, placeholder, *Data) {}

// inlineCount substitutes the count into the template line itself.
func inlineCount(count func(*Data) int) emitFunc {
	return func(b *strings.Builder, ph placeholder, d *Data) {
		marker := Marker + string(ph.keyword) + Marker
		b.WriteString(strings.ReplaceAll(ph.line, marker, strconv.Itoa(count(d))))
	}
}

func eachSpecies(format func(netfile.Species, int) string) emitFunc {
	return func(b *strings.Builder, ph placeholder, d *Data) {
		for i, s := range d.Species {
			writeLine(b, ph, format(s, i))
		}
	}
}

func eachAux(format func(netfile.AuxVar, int) string) emitFunc {
	return func(b *strings.Builder, ph placeholder, d *Data) {
		for i, a := range d.AuxVars {
			writeLine(b, ph, format(a, i))
		}
	}
}

func emitProperties(b *strings.Builder, ph placeholder, d *Data) {
	for _, key := range d.Properties.Keys() {
		value, _ := d.Properties.Get(key)
		writeLine(b, ph, fmt.Sprintf("constexpr int %s = %s;", key, value))
	}
}

// emitSpeciesEnum numbers the species from 1 and closes with NumberSpecies.
// An empty network emits no block.
func emitSpeciesEnum(b *strings.Builder, ph placeholder, d *Data) {
	if len(d.Species) == 0 {
		return
	}
	for i, s := range d.Species {
		if i == 0 {
			writeLine(b, ph, capitalize(s.ShortName)+"=1,")
			continue
		}
		writeLine(b, ph, capitalize(s.ShortName)+",")
	}
	last := d.Species[len(d.Species)-1]
	writeLine(b, ph, NumberSpecies+"="+capitalize(last.ShortName))
}

// emitAuxZeroEnum numbers the aux vars from 0 and closes with NumberAux.
// Without aux vars no block is emitted.
func emitAuxZeroEnum(b *strings.Builder, ph placeholder, d *Data) {
	if len(d.AuxVars) == 0 {
		return
	}
	for i, a := range d.AuxVars {
		if i == 0 {
			writeLine(b, ph, "i"+strings.ToLower(a.Name)+"=0,")
			continue
		}
		writeLine(b, ph, "i"+strings.ToLower(a.Name)+",")
	}
	last := d.AuxVars[len(d.AuxVars)-1]
	writeLine(b, ph, NumberAux+"=i"+strings.ToLower(last.Name))
}

func writeLine(b *strings.Builder, ph placeholder, text string) {
	b.WriteString(ph.indent)
	b.WriteString(text)
	b.WriteString(ph.eol)
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
