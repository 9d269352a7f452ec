// SPDX-License-Identifier: MIT
// Package: search
//
// set.go: fixed-width valve set over flow ordinals.

package search

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/volcano/core"
)

// Set is an immutable set of flow ordinals (see core.Graph.FlowBit) packed
// into one machine word. Every operation returns a new value; copying a Set
// is a register move.
type Set uint64

// FullSet returns the set {0, …, n-1}, clamped to [0, core.MaxFlowValves].
func FullSet(n int) Set {
	switch {
	case n <= 0:
		return 0
	case n >= core.MaxFlowValves:
		return ^Set(0)
	default:
		return Set(1)<<uint(n) - 1
	}
}

// SetOf returns the set holding the given ordinals. Ordinals outside
// [0, core.MaxFlowValves) are ignored.
func SetOf(ordinals ...int) Set {
	var s Set
	for _, b := range ordinals {
		s = s.With(b)
	}

	return s
}

// Has reports whether ordinal b is a member.
func (s Set) Has(b int) bool {
	return b >= 0 && b < core.MaxFlowValves && s&(1<<uint(b)) != 0
}

// With returns s ∪ {b}.
func (s Set) With(b int) Set {
	if b < 0 || b >= core.MaxFlowValves {
		return s
	}

	return s | 1<<uint(b)
}

// Without returns s ∖ {b}.
func (s Set) Without(b int) Set {
	if b < 0 || b >= core.MaxFlowValves {
		return s
	}

	return s &^ (1 << uint(b))
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Minus returns s ∖ o.
func (s Set) Minus(o Set) Set { return s &^ o }

// Len returns the cardinality.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Bits returns the members in ascending order.
func (s Set) Bits() []int {
	out := make([]int, 0, s.Len())
	for w := uint64(s); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}

	return out
}

// String renders the set as "{0,3,5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.Bits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(b))
	}
	sb.WriteByte('}')

	return sb.String()
}

// FlowSet returns the set of every flow ordinal in g.
func FlowSet(g *core.Graph) Set {
	return FullSet(g.FlowCount())
}

// SetOfIDs maps valve IDs to their flow ordinals.
//
// Errors:
//   - core.ErrValveNotFound for an unknown ID.
//   - ErrNotFlowValve for a valve whose rate is zero.
func SetOfIDs(g *core.Graph, ids ...string) (Set, error) {
	var s Set
	for _, id := range ids {
		i, ok := g.Index(id)
		if !ok {
			return 0, notFound(id)
		}
		b, ok := g.FlowBit(i)
		if !ok {
			return 0, notFlow(id)
		}
		s = s.With(b)
	}

	return s, nil
}

// IDs maps the members of s back to valve IDs in ascending ordinal order.
func (s Set) IDs(g *core.Graph) []string {
	flow := g.FlowIndices()
	out := make([]string, 0, s.Len())
	for _, b := range s.Bits() {
		if b < len(flow) {
			out = append(out, g.ID(flow[b]))
		}
	}

	return out
}
