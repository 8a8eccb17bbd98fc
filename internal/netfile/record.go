package netfile

import (
	"fmt"
	"strconv"
	"strings"

	"go.eggybyte.com/netgen/core/errors"
)

// AuxPrefix marks a record as an auxiliary variable.
const AuxPrefix = "__aux_"

// speciesFields is the number of tokens on a species line.
const speciesFields = 4

// Record is one classified line of a network file: a Species, an AuxVar or
// UnusedVar.
type Record interface {
	isRecord()
}

// Species is a nuclide with its mass number A and charge number Z.
type Species struct {
	Name      string  `yaml:"name"`
	ShortName string  `yaml:"short_name"`
	A         float64 `yaml:"a"`
	Z         float64 `yaml:"z"`
}

// AuxVar is an auxiliary variable, optionally gated by a preprocessor flag.
type AuxVar struct {
	Name string `yaml:"name"`
	// Preprocessor names the flag required for this variable to exist.
	// Empty means the variable is always present.
	Preprocessor string `yaml:"preprocessor,omitempty"`
}

// UnusedVar is returned for an aux variable whose required flag is not
// active. It is dropped without error.
type UnusedVar struct {
	Name         string
	Preprocessor string
}

func (Species) isRecord()   {}
func (AuxVar) isRecord()    {}
func (UnusedVar) isRecord() {}

func (s Species) String() string {
	return fmt.Sprintf("species %s, (A,Z) = %s,%s", s.Name, FormatNumber(s.A), FormatNumber(s.Z))
}

func (a AuxVar) String() string {
	return "auxiliary variable " + a.Name
}

// ParseRecord classifies the tokens of one content line.
//
// A first token starting with AuxPrefix yields an AuxVar named by the rest of
// the token; an optional second token names a required flag, and when
// "-D<flag>" is not in defines the result is UnusedVar. Any other line must
// have exactly four tokens: name, short name, A and Z.
func ParseRecord(fields []string, defines Defines) (Record, error) {
	if len(fields) == 0 {
		return nil, malformed(fields, "empty record")
	}

	if strings.HasPrefix(fields[0], AuxPrefix) {
		return parseAux(fields, defines)
	}

	if len(fields) != speciesFields {
		return nil, malformed(fields, "missing one or more fields in species definition: expected %d, got %d",
			speciesFields, len(fields))
	}

	a, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, malformed(fields, "mass number %q is not a number", fields[2])
	}
	z, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, malformed(fields, "charge number %q is not a number", fields[3])
	}

	return Species{
		Name:      fields[0],
		ShortName: fields[1],
		A:         a,
		Z:         z,
	}, nil
}

func parseAux(fields []string, defines Defines) (Record, error) {
	name := strings.TrimPrefix(fields[0], AuxPrefix)
	if name == "" {
		return nil, malformed(fields, "auxiliary variable has no name")
	}

	if len(fields) < 2 {
		return AuxVar{Name: name}, nil
	}

	flag := fields[1]
	if !defines.Requires(flag) {
		return UnusedVar{Name: name, Preprocessor: flag}, nil
	}
	return AuxVar{Name: name, Preprocessor: flag}, nil
}

func malformed(fields []string, format string, args ...any) error {
	return errors.Build(errors.CodeInvalidArgument).
		WithOp("netfile.ParseRecord").
		WithMsgf(format, args...).
		WithDetails(strings.Join(fields, " ")).
		Err()
}
