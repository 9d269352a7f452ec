// Package matrix builds the all-pairs travel-time matrix of a valve network.
//
// Every tunnel costs one minute, so the matrix holds, for every ordered pair
// of valves (a, b) that can reach each other, the minimum number of minutes
// needed to walk from a to b. The matrix is built exactly once per graph and
// is immutable afterwards; search engines share it by pointer across
// goroutines without synchronization.
//
// Builders (all observably identical, selected with WithAlgorithm):
//
//   - FloydWarshall (default): textbook O(n³) relaxation with a fixed
//     k → i → j loop order, so its iteration bound is known up front.
//   - Fixpoint: starts from direct tunnels and repeatedly composes known
//     legs start→mid→end, accepting a composite only when strictly shorter,
//     until a full pass changes nothing. Passes() reports how many full
//     scans were needed (diameter-dependent).
//   - BFS: one breadth-first search per source; O(n·(n+t)). Used as the
//     brute-force oracle in tests.
//
// Representation:
//
//	A dense row-major []int of n×n entries; -1 marks "no path". The diagonal
//	is 0. At reports ok=false for missing pairs; callers treat that as
//	unreachable rather than as an error.
//
// Invariants (checked in tests for every builder):
//
//   - dist(a,c) ≤ dist(a,b) + dist(b,c) for every reachable triple.
//   - dist(a,b) == dist(b,a) when every tunnel has a reverse tunnel.
//   - Entries equal BFS hop counts.
package matrix
