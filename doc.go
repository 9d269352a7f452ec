// Package volcano finds the most pressure a crew can release from a network
// of valves and tunnels before time runs out.
//
// 🌋 What is volcano?
//
//	A small, dependency-light solver that brings together:
//		• Graph model: validated valves, rates and tunnels (core/)
//		• Distances: all-pairs travel minutes, three interchangeable builders (matrix/, bfs/)
//		• Search: exact best-release search with an admissible upper bound (search/)
//		• Optimizer: one actor, or two actors splitting the valves between them (optimizer/)
//		• Records: the "Valve AA has flow rate=0; ..." text format (parser/)
//		• Generators: cycles, grids, stars, random networks for tests and benchmarks (builder/)
//
// ✨ How it fits together:
//
//	records ─► core.Graph ─► matrix.Distances ─► search.Engine ─► optimizer
//
// Everything after parsing is built once and read-only; the two-actor run
// fans the partitions of the flow valves out over a bounded worker pool.
//
// Quick start:
//
//	res, err := volcano.SolveReader(ctx, f, config.Default())
//	// res.Single == 1651, res.Pair == 1707 for the reference network
//
// The cmd/volcano binary wraps the same pipeline: `volcano solve input.txt`.
package volcano
