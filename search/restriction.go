// SPDX-License-Identifier: MIT
// Package: search
//
// restriction.go: explicit restricted/unrestricted variant.

package search

// Restriction limits which flow valves a search may open. The zero value is
// Unrestricted; Only(Set{}) is a genuine empty restriction that admits nothing.
type Restriction struct {
	restricted bool
	mask       Set
}

// Unrestricted admits every flow valve.
func Unrestricted() Restriction { return Restriction{} }

// Only admits exactly the members of s.
func Only(s Set) Restriction { return Restriction{restricted: true, mask: s} }

// Restricted reports whether r limits the search at all.
func (r Restriction) Restricted() bool { return r.restricted }

// Mask returns the admitted set; for Unrestricted it is every ordinal.
func (r Restriction) Mask() Set {
	if !r.restricted {
		return ^Set(0)
	}

	return r.mask
}

// Allows reports whether flow ordinal b may be opened.
func (r Restriction) Allows(b int) bool {
	return !r.restricted || r.mask.Has(b)
}

// String renders "unrestricted" or "only{…}".
func (r Restriction) String() string {
	if !r.restricted {
		return "unrestricted"
	}

	return "only" + r.mask.String()
}
