// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances (minutes of travel), parent links and visit order.
//
// Every tunnel costs exactly one minute, so BFS depth is the true shortest
// travel time from the start valve. The matrix package uses BFS as one of its
// all-pairs builders and as the brute-force oracle its tests cross-check
// against.
//
// Determinism
//
//	Tunnels are followed in declaration order (core.Graph.NeighborIndices),
//	so the visit sequence is fully reproducible for a given graph.
//
// Complexity (V = valves, T = tunnels)
//
//   - Time:   O(V + T)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "AA",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(5),
//	)
//	minutes := res.Depth["JJ"]
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start valve does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
