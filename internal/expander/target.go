package expander

import "fmt"

// Target selects the syntax of the generated lines.
type Target int

const (
	// Fortran emits 1-based indexed assignments (aion(1) = 4.0_rt).
	Fortran Target = iota
	// CXX emits 0-based array initializer entries with index comments.
	CXX

	numTargets
)

func (t Target) String() string {
	switch t {
	case Fortran:
		return "fortran"
	case CXX:
		return "cxx"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}
