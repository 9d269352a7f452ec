// Package core defines the immutable valve network every other package reads.
//
// A network G = (V, T) is a set of named valves V, each with a non-negative
// flow rate, and a set of tunnels T. Every tunnel costs exactly one minute to
// traverse. Tunnels are stored as declared by each valve record, so a network
// may be asymmetric unless WithStrictSymmetry() is requested.
//
// Construction is all-or-nothing:
//
//	g, err := core.NewGraph([]core.Valve{
//	    {ID: "AA", Rate: 0, Tunnels: []string{"BB"}},
//	    {ID: "BB", Rate: 13, Tunnels: []string{"AA"}},
//	})
//
// Either every record validates and every tunnel resolves to a declared
// valve, or NewGraph returns a sentinel error (matched with errors.Is) and no
// graph at all.
//
// Ordinals:
//
//   - Every valve receives a dense ordinal 0..Len()-1, assigned in ascending
//     ID order. Ordinals are stable for equal input sets regardless of the
//     order the records were supplied in.
//   - Every positive-rate valve additionally receives a flow ordinal
//     0..FlowCount()-1 (at most 64). Flow ordinals are the bit positions used
//     by search.Set, which keeps opened-valve sets to a single machine word.
//
// Concurrency:
//
//	A *Graph is never mutated after NewGraph returns, so any number of
//	goroutines may read it without synchronization.
package core
