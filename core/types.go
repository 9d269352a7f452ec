// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Valve and Graph types, sentinel errors, GraphOption and the NewGraph constructor.
// Policy:
//   - NewGraph validates everything up front; a *Graph is immutable afterwards.
//   - Sentinels are plain errors; call sites attach valve/tunnel metadata with zerr.

package core

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"
	"go.trai.ch/zerr"
)

// MaxFlowValves is the number of positive-rate valves a single Graph may hold.
// Flow ordinals index the bits of a uint64 opened-set.
const MaxFlowValves = 64

// Sentinel errors for graph construction and queries.
var (
	// ErrNoValves indicates NewGraph was called with an empty record set.
	ErrNoValves = errors.New("core: no valves")

	// ErrEmptyValveID indicates a record with an empty ID.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrDuplicateValve indicates two records share the same ID.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrNegativeRate indicates a record with a flow rate below zero.
	ErrNegativeRate = errors.New("core: negative flow rate")

	// ErrUnknownTunnel indicates a tunnel naming a valve absent from the input set.
	ErrUnknownTunnel = errors.New("core: tunnel leads to unknown valve")

	// ErrSelfTunnel indicates a tunnel from a valve to itself.
	ErrSelfTunnel = errors.New("core: tunnel leads back to its own valve")

	// ErrAsymmetricTunnel indicates a one-way tunnel under WithStrictSymmetry.
	ErrAsymmetricTunnel = errors.New("core: tunnel has no reverse tunnel")

	// ErrTooManyFlowValves indicates more than MaxFlowValves positive-rate valves.
	ErrTooManyFlowValves = errors.New("core: too many positive-rate valves")

	// ErrValveNotFound indicates a query referenced an ID that is not in the graph.
	ErrValveNotFound = errors.New("core: valve not found")
)

// Valve is one validated input record.
//
// ID uniquely identifies the valve, Rate is the pressure released per minute
// once the valve is open, and Tunnels lists the directly connected valves in
// declaration order.
type Valve struct {
	// ID is the unique valve name (a short uppercase token such as "AA").
	ID string

	// Rate is the non-negative flow rate released per minute once opened.
	Rate int

	// Tunnels lists neighbor IDs in the order they were declared.
	Tunnels []string
}

// GraphOption configures validation performed by NewGraph.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	strictSymmetry bool
}

// WithStrictSymmetry requires every tunnel A→B to be matched by a tunnel B→A.
func WithStrictSymmetry() GraphOption {
	return func(o *graphOptions) { o.strictSymmetry = true }
}

// Graph is an immutable valve network.
//
// valves is indexed by ordinal; adjacency[i] holds the ordinals of valve i's
// declared tunnels in declaration order; flowBit[i] is the flow ordinal of
// valve i or -1 when its rate is zero.
type Graph struct {
	valves    []Valve
	index     btree.Map[string, int] // ID → ordinal, ordered by ID
	adjacency [][]int
	flowBit   []int
	flowIdx   []int // flow ordinal → valve ordinal
	totalRate int
}

// NewGraph validates valves and builds an immutable Graph.
//
// Implementation:
//   - Stage 1: Insert every ID into an ordered index, rejecting empty, duplicate
//     and negative-rate records.
//   - Stage 2: Assign ordinals by ascending ID and flow ordinals to
//     positive-rate valves.
//   - Stage 3: Resolve every tunnel to an ordinal, rejecting unknown or
//     self-referencing targets (and one-way tunnels under strict symmetry).
//
// Errors:
//   - ErrNoValves, ErrEmptyValveID, ErrDuplicateValve, ErrNegativeRate,
//     ErrUnknownTunnel, ErrSelfTunnel, ErrAsymmetricTunnel, ErrTooManyFlowValves.
//
// Complexity:
//   - Time O(V log V + T), Space O(V + T).
func NewGraph(valves []Valve, opts ...GraphOption) (*Graph, error) {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(valves) == 0 {
		return nil, ErrNoValves
	}

	// Stage 1: ordered index of records.
	var byID btree.Map[string, Valve]
	for _, v := range valves {
		if v.ID == "" {
			return nil, ErrEmptyValveID
		}
		if v.Rate < 0 {
			return nil, zerr.With(zerr.With(ErrNegativeRate, "valve", v.ID), "rate", v.Rate)
		}
		if _, replaced := byID.Set(v.ID, v); replaced {
			return nil, zerr.With(ErrDuplicateValve, "valve", v.ID)
		}
	}

	// Stage 2: ordinals in ascending ID order.
	g := &Graph{
		valves:    make([]Valve, 0, byID.Len()),
		adjacency: make([][]int, byID.Len()),
		flowBit:   make([]int, byID.Len()),
	}
	var overflow error
	byID.Scan(func(id string, v Valve) bool {
		i := len(g.valves)
		g.index.Set(id, i)
		g.valves = append(g.valves, Valve{
			ID:      v.ID,
			Rate:    v.Rate,
			Tunnels: append([]string(nil), v.Tunnels...),
		})
		g.flowBit[i] = -1
		if v.Rate > 0 {
			if len(g.flowIdx) == MaxFlowValves {
				overflow = zerr.With(ErrTooManyFlowValves, "limit", MaxFlowValves)
				return false
			}
			g.flowBit[i] = len(g.flowIdx)
			g.flowIdx = append(g.flowIdx, i)
			g.totalRate += v.Rate
		}
		return true
	})
	if overflow != nil {
		return nil, overflow
	}

	// Stage 3: resolve tunnels.
	for i, v := range g.valves {
		row := make([]int, 0, len(v.Tunnels))
		for _, t := range v.Tunnels {
			j, ok := g.index.Get(t)
			if !ok {
				return nil, zerr.With(zerr.With(ErrUnknownTunnel, "valve", v.ID), "tunnel", t)
			}
			if j == i {
				return nil, zerr.With(ErrSelfTunnel, "valve", v.ID)
			}
			row = append(row, j)
		}
		g.adjacency[i] = row
	}
	if o.strictSymmetry {
		if err := g.checkSymmetry(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// checkSymmetry reports the first tunnel without a reverse tunnel.
func (g *Graph) checkSymmetry() error {
	for i, row := range g.adjacency {
		for _, j := range row {
			if !g.hasTunnel(j, i) {
				return zerr.With(zerr.With(ErrAsymmetricTunnel, "valve", g.valves[i].ID), "tunnel", g.valves[j].ID)
			}
		}
	}

	return nil
}

func (g *Graph) hasTunnel(from, to int) bool {
	for _, k := range g.adjacency[from] {
		if k == to {
			return true
		}
	}

	return false
}

// String renders a compact summary, e.g. "core.Graph{valves=10 flow=6 tunnels=20}".
func (g *Graph) String() string {
	tunnels := 0
	for _, row := range g.adjacency {
		tunnels += len(row)
	}

	return fmt.Sprintf("core.Graph{valves=%d flow=%d tunnels=%d}", len(g.valves), len(g.flowIdx), tunnels)
}
