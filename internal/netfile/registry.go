package netfile

import (
	"go.eggybyte.com/netgen/core/errors"
)

// Registry holds the species and auxiliary variables of one network, in the
// order they were defined. Species and aux names are separate namespaces.
type Registry struct {
	species    []Species
	auxVars    []AuxVar
	speciesIdx map[string]int
	auxIdx     map[string]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		speciesIdx: make(map[string]int),
		auxIdx:     make(map[string]int),
	}
}

// Insert adds a Species or AuxVar. A name already present in the matching
// list is rejected with a CodeAlreadyExists error and the registry is left
// unchanged. UnusedVar is ignored.
func (r *Registry) Insert(rec Record) error {
	switch v := rec.(type) {
	case Species:
		if _, ok := r.speciesIdx[v.Name]; ok {
			return duplicate(v.String(), v.Name)
		}
		r.speciesIdx[v.Name] = len(r.species)
		r.species = append(r.species, v)
	case AuxVar:
		if _, ok := r.auxIdx[v.Name]; ok {
			return duplicate(v.String(), v.Name)
		}
		r.auxIdx[v.Name] = len(r.auxVars)
		r.auxVars = append(r.auxVars, v)
	case UnusedVar:
	default:
		return errors.Build(errors.CodeInvalidArgument).
			WithOp("netfile.Registry.Insert").
			WithMsgf("unsupported record type %T", rec).
			Err()
	}
	return nil
}

func duplicate(desc, name string) error {
	return errors.Build(errors.CodeAlreadyExists).
		WithOp("netfile.Registry.Insert").
		WithMsgf("%s already defined", desc).
		WithDetails(name).
		Err()
}

// Species returns the species in definition order.
func (r *Registry) Species() []Species {
	out := make([]Species, len(r.species))
	copy(out, r.species)
	return out
}

// AuxVars returns the auxiliary variables in definition order.
func (r *Registry) AuxVars() []AuxVar {
	out := make([]AuxVar, len(r.auxVars))
	copy(out, r.auxVars)
	return out
}

// NumSpecies returns the number of species.
func (r *Registry) NumSpecies() int { return len(r.species) }

// NumAux returns the number of auxiliary variables.
func (r *Registry) NumAux() int { return len(r.auxVars) }

// SpeciesIndex returns the 0-based position of the named species.
func (r *Registry) SpeciesIndex(name string) (int, bool) {
	i, ok := r.speciesIdx[name]
	return i, ok
}

// AuxIndex returns the 0-based position of the named aux variable.
func (r *Registry) AuxIndex(name string) (int, bool) {
	i, ok := r.auxIdx[name]
	return i, ok
}
