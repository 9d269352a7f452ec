// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query facade over an immutable Graph.
// Policy:
//   - No mutation; every returned slice is a fresh copy.
//   - Ordinal-based accessors are for hot loops and panic on out-of-range
//     ordinals like slice indexing does; ID-based accessors return errors.

package core

import "go.trai.ch/zerr"

// Len returns the number of valves.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.valves) }

// FlowCount returns the number of positive-rate valves.
// Complexity: O(1).
func (g *Graph) FlowCount() int { return len(g.flowIdx) }

// TotalRate returns the sum of all flow rates.
// Complexity: O(1).
func (g *Graph) TotalRate() int { return g.totalRate }

// Index returns the ordinal of id.
// Complexity: O(log V).
func (g *Graph) Index(id string) (int, bool) {
	return g.index.Get(id)
}

// ID returns the valve name at ordinal i.
func (g *Graph) ID(i int) string { return g.valves[i].ID }

// Rate returns the flow rate at ordinal i.
func (g *Graph) Rate(i int) int { return g.valves[i].Rate }

// FlowBit returns the flow ordinal of valve i, or false when its rate is zero.
func (g *Graph) FlowBit(i int) (int, bool) {
	b := g.flowBit[i]

	return b, b >= 0
}

// FlowIndices returns the valve ordinals of all positive-rate valves,
// ordered by flow ordinal.
// Complexity: O(F).
func (g *Graph) FlowIndices() []int {
	return append([]int(nil), g.flowIdx...)
}

// NeighborIndices returns the ordinals of valve i's tunnel targets in
// declaration order.
// Complexity: O(d).
func (g *Graph) NeighborIndices(i int) []int {
	return append([]int(nil), g.adjacency[i]...)
}

// Valve returns a copy of the record for id.
//
// Errors:
//   - ErrValveNotFound if id is not part of the graph.
//
// Complexity: O(log V + d).
func (g *Graph) Valve(id string) (Valve, error) {
	i, ok := g.index.Get(id)
	if !ok {
		return Valve{}, zerr.With(ErrValveNotFound, "valve", id)
	}
	v := g.valves[i]
	v.Tunnels = append([]string(nil), v.Tunnels...)

	return v, nil
}

// Neighbors returns the declared tunnel targets of id, in declaration order.
//
// Errors:
//   - ErrValveNotFound if id is not part of the graph.
//
// Complexity: O(log V + d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	i, ok := g.index.Get(id)
	if !ok {
		return nil, zerr.With(ErrValveNotFound, "valve", id)
	}

	return append([]string(nil), g.valves[i].Tunnels...), nil
}

// HasValve reports whether id is part of the graph.
func (g *Graph) HasValve(id string) bool {
	_, ok := g.index.Get(id)

	return ok
}

// Valves returns copies of all records ordered by ordinal (ascending ID).
// Complexity: O(V + T).
func (g *Graph) Valves() []Valve {
	out := make([]Valve, len(g.valves))
	for i, v := range g.valves {
		v.Tunnels = append([]string(nil), v.Tunnels...)
		out[i] = v
	}

	return out
}
