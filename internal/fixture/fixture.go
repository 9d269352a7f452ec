// Package fixture holds the reference ten-valve network shared by tests.
package fixture

import "github.com/katalvlaran/volcano/core"

// Reference answers for the network returned by Reference.
const (
	ReferenceStart       = "AA"
	ReferenceSingle      = 1651 // one actor, 30 minutes
	ReferencePair        = 1707 // two actors, 26 minutes each
	ReferenceMinutes     = 30
	ReferencePairMinutes = 26
)

// ReferenceText is the reference network in record form.
const ReferenceText = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// Reference returns a fresh copy of the reference network records.
func Reference() []core.Valve {
	return []core.Valve{
		{ID: "AA", Rate: 0, Tunnels: []string{"DD", "II", "BB"}},
		{ID: "BB", Rate: 13, Tunnels: []string{"CC", "AA"}},
		{ID: "CC", Rate: 2, Tunnels: []string{"DD", "BB"}},
		{ID: "DD", Rate: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{ID: "EE", Rate: 3, Tunnels: []string{"FF", "DD"}},
		{ID: "FF", Rate: 0, Tunnels: []string{"EE", "GG"}},
		{ID: "GG", Rate: 0, Tunnels: []string{"FF", "HH"}},
		{ID: "HH", Rate: 22, Tunnels: []string{"GG"}},
		{ID: "II", Rate: 0, Tunnels: []string{"AA", "JJ"}},
		{ID: "JJ", Rate: 21, Tunnels: []string{"II"}},
	}
}

// MustGraph builds the reference graph and panics on error.
func MustGraph() *core.Graph {
	g, err := core.NewGraph(Reference())
	if err != nil {
		panic(err)
	}

	return g
}
