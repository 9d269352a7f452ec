// Package search computes the maximum pressure an actor can release from a
// start valve within a time budget.
//
// Model:
//
//   - Travel between valves costs the precomputed matrix.Distances minutes.
//   - Opening a valve costs one minute; a valve of rate r opened with t minutes
//     left after the opening minute contributes r·t.
//   - Only positive-rate valves are destinations, each opened at most once per
//     branch. A candidate must be reachable with at least one minute to spare
//     after arrival and admitted by the Restriction.
//
// Sets of opened valves are a Set: a uint64 bit mask over the graph's flow
// ordinals (core.Graph.FlowBit), so each branch extends its own copy in O(1).
//
// Restriction is an explicit variant: Unrestricted() (the zero value) or
// Only(s). Only of the empty set admits nothing, so such a query returns 0.
//
// Engine.MaxRelease supports two policies with identical results:
//
//   - NoBound:    plain exhaustive recursion.
//   - UpperBound: depth-first branch-and-bound; states whose optimistic
//     estimate cannot beat the incumbent are skipped.
//
// Cancellation is checked every 4096 expanded states; a cancelled context
// surfaces as ctx.Err().
package search
