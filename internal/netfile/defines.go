package netfile

import (
	"sort"
	"strings"
)

// Defines is the set of active preprocessor define tokens, stored verbatim
// (e.g. "-DREACT_SDC").
type Defines map[string]struct{}

// ParseDefines splits a whitespace separated define string, as passed by the
// build system, into a Defines set.
func ParseDefines(s string) Defines {
	return NewDefines(strings.Fields(s)...)
}

// NewDefines builds a Defines set from individual tokens. Each token may
// itself hold several whitespace separated defines.
func NewDefines(tokens ...string) Defines {
	d := make(Defines)
	for _, tok := range tokens {
		for _, f := range strings.Fields(tok) {
			d[f] = struct{}{}
		}
	}
	return d
}

// Has reports whether the define token is active. The token is matched
// verbatim, so callers pass the "-D<name>" form.
func (d Defines) Has(token string) bool {
	_, ok := d[token]
	return ok
}

// Requires reports whether the flag named by a network file (without the
// "-D" prefix) is active.
func (d Defines) Requires(name string) bool {
	return d.Has("-D" + name)
}

// Tokens returns the active tokens in sorted order.
func (d Defines) Tokens() []string {
	out := make([]string, 0, len(d))
	for tok := range d {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
