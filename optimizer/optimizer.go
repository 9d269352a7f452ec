// SPDX-License-Identifier: MIT

package optimizer

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/volcano/metrics"
	"github.com/katalvlaran/volcano/search"
)

var tracer = otel.Tracer("volcano.optimizer")

// Optimizer drives single-actor and two-actor searches over one flow set.
// It holds no mutable state and is safe for concurrent use.
type Optimizer struct {
	s    Searcher
	flow search.Set
	opts Options
}

// Pair is the best two-actor split found by TwoActor.
type Pair struct {
	// Value is the summed release of both actors.
	Value int
	// A and B are the disjoint territories; A is the smaller side.
	A, B search.Set
	// Partitions is the number of splits evaluated.
	Partitions int
}

// New returns an Optimizer searching with s over the flow ordinals in flow.
//
// Errors:
//   - ErrNilSearcher, ErrOptionViolation.
func New(s Searcher, flow search.Set, opts ...Option) (*Optimizer, error) {
	if s == nil {
		return nil, ErrNilSearcher
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Optimizer{s: s, flow: flow, opts: o}, nil
}

// SingleActor returns the unrestricted best release from start.
func (o *Optimizer) SingleActor(ctx context.Context, start string, minutes int) (int, error) {
	ctx, span := tracer.Start(ctx, "optimizer.SingleActor",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.Int("minutes", minutes),
			attribute.Int("flow_valves", o.flow.Len()),
		),
	)
	defer span.End()

	v, st, err := o.s.MaxReleaseStats(ctx, search.Query{Start: start, Minutes: minutes})
	metrics.ObserveSearch(metrics.ModeSingle, st.Nodes, st.Pruned)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(
		attribute.Int("release", v),
		attribute.Int64("nodes", st.Nodes),
		attribute.Int64("pruned", st.Pruned),
	)
	o.opts.Logger.Debug("single actor done", "start", start, "minutes", minutes, "release", v, "nodes", st.Nodes)

	return v, nil
}

// TwoActor returns the best summed release of two actors starting together at
// start, each restricted to one side of a partition of the flow set.
//
// Implementation:
//   - Partitions are fanned out over an errgroup limited to Options.Workers.
//   - Each task runs both restricted searches and folds its sum into the
//     shared best under a mutex; the fold is a plain maximum, so completion
//     order is irrelevant. Ties keep the numerically smaller A.
//   - The first error cancels the group and is returned.
func (o *Optimizer) TwoActor(ctx context.Context, start string, minutes int) (Pair, error) {
	ctx, span := tracer.Start(ctx, "optimizer.TwoActor",
		trace.WithAttributes(
			attribute.String("start", start),
			attribute.Int("minutes", minutes),
			attribute.Int("flow_valves", o.flow.Len()),
			attribute.Int("workers", o.opts.Workers),
		),
	)
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Workers)

	var (
		mu    sync.Mutex
		best  = Pair{Value: -1}
		count int
	)
	for a, b := range Partitions(o.flow) {
		if gctx.Err() != nil {
			break
		}
		count++
		g.Go(func() error {
			va, err := o.restricted(gctx, start, minutes, a)
			if err != nil {
				return err
			}
			vb, err := o.restricted(gctx, start, minutes, b)
			if err != nil {
				return err
			}
			metrics.Partitions.Inc()

			mu.Lock()
			defer mu.Unlock()
			sum := va + vb
			if sum > best.Value || (sum == best.Value && a < best.A) {
				best.Value, best.A, best.B = sum, a, b
				o.opts.Logger.Debug("two actors improved", "release", sum, "a", a.String(), "b", b.String())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Pair{}, err
	}
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Pair{}, err
	}

	best.Partitions = count
	span.SetAttributes(
		attribute.Int("release", best.Value),
		attribute.Int("partitions", count),
	)
	o.opts.Logger.Debug("two actors done", "start", start, "minutes", minutes, "release", best.Value, "partitions", count)

	return best, nil
}

func (o *Optimizer) restricted(ctx context.Context, start string, minutes int, s search.Set) (int, error) {
	v, st, err := o.s.MaxReleaseStats(ctx, search.Query{
		Start:    start,
		Minutes:  minutes,
		Restrict: search.Only(s),
	})
	metrics.ObserveSearch(metrics.ModePair, st.Nodes, st.Pruned)

	return v, err
}
