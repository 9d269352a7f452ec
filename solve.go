// SPDX-License-Identifier: MIT

package volcano

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/volcano/bfs"
	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/matrix"
	"github.com/katalvlaran/volcano/metrics"
	"github.com/katalvlaran/volcano/optimizer"
	"github.com/katalvlaran/volcano/parser"
	"github.com/katalvlaran/volcano/search"
)

var tracer = otel.Tracer("volcano")

// Result holds both answers of one scenario.
type Result struct {
	// Single is the best release of one actor within Scenario.PrimaryMinutes.
	Single int
	// Pair is the best summed release of two actors within
	// Scenario.SecondaryMinutes each.
	Pair int
	// Partitions is the number of flow-set splits the pair run evaluated.
	Partitions int
	// Elapsed covers the whole call, parsing excluded.
	Elapsed time.Duration
}

// Solve builds the graph, its distance matrix and a search engine from
// valves, then runs the single-actor and two-actor optimizations of sc.
//
// Errors are returned as produced by the stage that failed (core, matrix,
// search, optimizer or config sentinels), prefixed with the stage name.
func Solve(ctx context.Context, valves []core.Valve, sc config.Scenario, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if o.workers > 0 {
		sc.Workers = o.workers
	}
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}
	algo, _ := sc.Algorithm()
	bound, _ := sc.BoundPolicy()

	ctx, span := tracer.Start(ctx, "volcano.Solve",
		trace.WithAttributes(
			attribute.Int("valves", len(valves)),
			attribute.String("start", sc.Start),
			attribute.String("distance", algo.String()),
			attribute.String("bound", bound.String()),
		),
	)
	defer span.End()

	res, err := solve(ctx, valves, sc, algo, bound, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(
		attribute.Int("single", res.Single),
		attribute.Int("pair", res.Pair),
	)

	return res, nil
}

func solve(
	ctx context.Context,
	valves []core.Valve,
	sc config.Scenario,
	algo matrix.Algorithm,
	bound search.Bound,
	o options,
) (Result, error) {
	begin := time.Now()
	log := o.logger

	t := time.Now()
	g, err := core.NewGraph(valves)
	if err != nil {
		return Result{}, fmt.Errorf("graph: %w", err)
	}
	metrics.ObservePhase(metrics.PhaseGraph, t)
	log.Debug("graph built", "valves", g.Len(), "flow_valves", g.FlowCount(), "total_rate", g.TotalRate())
	if g.HasValve(sc.Start) {
		stranded, err := unreachableFlow(ctx, g, sc.Start)
		if err != nil {
			return Result{}, fmt.Errorf("reach: %w", err)
		}
		if len(stranded) > 0 {
			log.Warn("flow valves unreachable from start", "start", sc.Start, "valves", stranded)
		}
	}

	t = time.Now()
	d, err := matrix.Build(g, matrix.WithAlgorithm(algo), matrix.WithContext(ctx))
	if err != nil {
		return Result{}, fmt.Errorf("distances: %w", err)
	}
	metrics.ObservePhase(metrics.PhaseDistances, t)
	log.Debug("distances built", "algorithm", algo.String(), "passes", d.Passes())

	e, err := search.NewEngine(g, d, search.WithBound(bound))
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}
	opt, err := optimizer.New(e, e.FlowSet(),
		optimizer.WithWorkers(sc.Workers),
		optimizer.WithLogger(log),
	)
	if err != nil {
		return Result{}, fmt.Errorf("optimizer: %w", err)
	}

	var res Result

	t = time.Now()
	if res.Single, err = opt.SingleActor(ctx, sc.Start, sc.PrimaryMinutes); err != nil {
		return Result{}, fmt.Errorf("single: %w", err)
	}
	metrics.ObservePhase(metrics.PhaseSingle, t)

	t = time.Now()
	pair, err := opt.TwoActor(ctx, sc.Start, sc.SecondaryMinutes)
	if err != nil {
		return Result{}, fmt.Errorf("pair: %w", err)
	}
	metrics.ObservePhase(metrics.PhasePair, t)

	res.Pair, res.Partitions = pair.Value, pair.Partitions
	res.Elapsed = time.Since(begin)
	log.Info("solved",
		"start", sc.Start,
		"single", res.Single,
		"pair", res.Pair,
		"partitions", res.Partitions,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// unreachableFlow lists the positive-rate valves no route from start reaches.
func unreachableFlow(ctx context.Context, g *core.Graph, start string) ([]string, error) {
	res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, i := range g.FlowIndices() {
		if _, ok := res.Depth[g.ID(i)]; !ok {
			out = append(out, g.ID(i))
		}
	}

	return out, nil
}

// SolveReader parses valve records from r and solves them.
func SolveReader(ctx context.Context, r io.Reader, sc config.Scenario, opts ...Option) (Result, error) {
	valves, err := parser.Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("parse: %w", err)
	}

	return Solve(ctx, valves, sc, opts...)
}
