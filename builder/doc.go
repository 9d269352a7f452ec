// Package builder generates deterministic valve networks for tests,
// benchmarks and the `volcano generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and rate function.
//   - Valve-ID schemes (IDFn implementations):
//     – PairIDFn:          two uppercase letters ("AA","AB",…,"ZZ"), the default.
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Flow-rate distributions (RateFn implementations):
//     – ConstantRateFn:    fixed value (DefaultRate unless overridden).
//     – UniformRateFn:     uniform ∼U[min,max].
//     – SparseRateFn:      uniform with probability p, zero otherwise.
//   - Topologies: Cycle, Path, Star, Complete, Grid, RandomSparse.
//
// Guarantees:
//
//   - Every generated tunnel has its reverse, so output passes
//     core.WithStrictSymmetry.
//   - Composition: constructors share one draft network; re-adding a valve or
//     tunnel is a no-op.
//   - Records are emitted sorted by ID and are ready for core.NewGraph or
//     parser.Format.
//   - Fast‐fail on invalid option parameters via panics in option constructors;
//     constructors return sentinel errors.
package builder
