// SPDX-License-Identifier: MIT
package volcano_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano"
	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/internal/fixture"
	"github.com/katalvlaran/volcano/matrix"
	"github.com/katalvlaran/volcano/parser"
	"github.com/katalvlaran/volcano/search"
)

func TestSolve_Reference(t *testing.T) {
	t.Parallel()

	res, err := volcano.Solve(context.Background(), fixture.Reference(), config.Default())
	require.NoError(t, err)
	assert.Equal(t, fixture.ReferenceSingle, res.Single)
	assert.Equal(t, fixture.ReferencePair, res.Pair)
	assert.Equal(t, 42, res.Partitions)
	assert.Positive(t, res.Elapsed)
}

func TestSolveReader_TestdataFile(t *testing.T) {
	t.Parallel()

	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	res, err := volcano.SolveReader(context.Background(), f, config.Default(), volcano.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, fixture.ReferenceSingle, res.Single)
	assert.Equal(t, fixture.ReferencePair, res.Pair)
}

func TestSolve_AllPipelinesAgree(t *testing.T) {
	t.Parallel()

	algos := []matrix.Algorithm{matrix.FloydWarshall, matrix.Fixpoint, matrix.BFS}
	bounds := []search.Bound{search.UpperBound, search.NoBound}
	for _, a := range algos {
		for _, b := range bounds {
			t.Run(fmt.Sprintf("%s/%s", a, b), func(t *testing.T) {
				t.Parallel()

				sc := config.Default()
				sc.Distance, sc.Bound = a.String(), b.String()
				res, err := volcano.Solve(context.Background(), fixture.Reference(), sc)
				require.NoError(t, err)
				assert.Equal(t, fixture.ReferenceSingle, res.Single)
				assert.Equal(t, fixture.ReferencePair, res.Pair)
			})
		}
	}
}

func TestSolve_CustomBudgets(t *testing.T) {
	t.Parallel()

	sc := config.Default()
	sc.PrimaryMinutes, sc.SecondaryMinutes = 0, 0
	res, err := volcano.Solve(context.Background(), fixture.Reference(), sc)
	require.NoError(t, err)
	assert.Zero(t, res.Single)
	assert.Zero(t, res.Pair)

	// At equal budgets two actors never do worse than one.
	sc.PrimaryMinutes, sc.SecondaryMinutes = 20, 20
	res, err = volcano.Solve(context.Background(), fixture.Reference(), sc)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Pair, res.Single)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sc := config.Default()
	sc.Start = "ZZ"
	_, err := volcano.Solve(ctx, fixture.Reference(), sc)
	assert.ErrorIs(t, err, search.ErrStartNotFound)

	sc = config.Default()
	sc.Distance = "dijkstra"
	_, err = volcano.Solve(ctx, fixture.Reference(), sc)
	assert.ErrorIs(t, err, config.ErrInvalidScenario)

	dup := append(fixture.Reference(), core.Valve{ID: "AA"})
	_, err = volcano.Solve(ctx, dup, config.Default())
	assert.ErrorIs(t, err, core.ErrDuplicateValve)

	_, err = volcano.Solve(ctx, nil, config.Default())
	assert.ErrorIs(t, err, core.ErrNoValves)

	_, err = volcano.Solve(ctx, fixture.Reference(), config.Default(), volcano.WithWorkers(0))
	assert.ErrorIs(t, err, volcano.ErrOptionViolation)

	_, err = volcano.SolveReader(ctx, strings.NewReader("Valve AA has flow rate=oops\n"), config.Default())
	assert.ErrorIs(t, err, parser.ErrMalformedRecord)
}

func TestSolve_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := volcano.Solve(ctx, fixture.Reference(), config.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := volcano.Solve(context.Background(), fixture.Reference(), config.Default(), volcano.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "graph built")
	assert.Contains(t, out, "single=1651")
	assert.Contains(t, out, "pair=1707")
}

func TestSolve_WarnsAboutStrandedValves(t *testing.T) {
	t.Parallel()

	valves := append(fixture.Reference(), core.Valve{ID: "ZZ", Rate: 50})
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	res, err := volcano.Solve(context.Background(), valves, config.Default(), volcano.WithLogger(log))
	require.NoError(t, err)
	assert.Equal(t, fixture.ReferenceSingle, res.Single)
	assert.Contains(t, buf.String(), "flow valves unreachable from start")
	assert.Contains(t, buf.String(), "ZZ")
}

func BenchmarkSolve_Reference(b *testing.B) {
	valves := fixture.Reference()
	sc := config.Default()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := volcano.Solve(context.Background(), valves, sc); err != nil {
			b.Fatal(err)
		}
	}
}
