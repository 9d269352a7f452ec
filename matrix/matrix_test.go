// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/internal/fixture"
	"github.com/katalvlaran/volcano/matrix"
)

var allAlgorithms = []matrix.Algorithm{matrix.FloydWarshall, matrix.Fixpoint, matrix.BFS}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Build(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	_, err = matrix.Build(fixture.MustGraph(), matrix.WithAlgorithm(matrix.Algorithm(42)))
	require.ErrorIs(t, err, matrix.ErrUnknownAlgorithm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, algo := range []matrix.Algorithm{matrix.Fixpoint, matrix.BFS} {
		_, err = matrix.Build(fixture.MustGraph(), matrix.WithAlgorithm(algo), matrix.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, algo.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, algo := range allAlgorithms {
		got, err := matrix.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	got, err := matrix.ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, matrix.FloydWarshall, got)

	_, err = matrix.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, matrix.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", matrix.Algorithm(9).String())
}

// TestBuild_ReferenceDistances checks hand-computed travel times.
func TestBuild_ReferenceDistances(t *testing.T) {
	t.Parallel()

	g := fixture.MustGraph()
	cases := []struct {
		from, to string
		want     int
	}{
		{"AA", "AA", 0},
		{"AA", "DD", 1},
		{"AA", "CC", 2},
		{"AA", "HH", 5},
		{"HH", "JJ", 7},
		{"JJ", "BB", 3},
		{"EE", "BB", 3},
	}
	for _, algo := range allAlgorithms {
		d, err := matrix.Build(g, matrix.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, g.Len(), d.Len())
		for _, tc := range cases {
			got, ok := d.Between(tc.from, tc.to)
			require.True(t, ok, "%s: %s→%s", algo, tc.from, tc.to)
			assert.Equal(t, tc.want, got, "%s: %s→%s", algo, tc.from, tc.to)
		}
		_, ok := d.Between("AA", "ZZ")
		assert.False(t, ok)
		assert.Equal(t, g.Len()-1, d.Reachable(0))
	}
}

func TestBuild_UnreachableAndDirected(t *testing.T) {
	t.Parallel()

	g, err := core.NewGraph([]core.Valve{
		{ID: "AA", Tunnels: []string{"BB"}},
		{ID: "BB", Tunnels: []string{"CC"}},
		{ID: "CC"},
		{ID: "DD", Rate: 4},
	})
	require.NoError(t, err)

	for _, algo := range allAlgorithms {
		d, err := matrix.Build(g, matrix.WithAlgorithm(algo))
		require.NoError(t, err)

		got, ok := d.Between("AA", "CC")
		require.True(t, ok)
		assert.Equal(t, 2, got)

		_, ok = d.Between("CC", "AA")
		assert.False(t, ok, "%s: one-way tunnels must not be reversed", algo)
		_, ok = d.Between("AA", "DD")
		assert.False(t, ok)

		assert.Equal(t, []int{-1, -1, -1, 0}, d.Row(3))
		assert.Equal(t, 2, d.Reachable(0))
		assert.Equal(t, 0, d.Reachable(3))
	}
}

// TestBuild_AlgorithmsAgree cross-checks the three builders and properties
// that any shortest-path matrix over unit tunnels must satisfy.
func TestBuild_AlgorithmsAgree(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSparseRate(0.4, 1, 25)},
			builder.RandomSparse(24, 0.12),
		)
		require.NoError(t, err)

		var mats []*matrix.Distances
		for _, algo := range allAlgorithms {
			d, err := matrix.Build(g, matrix.WithAlgorithm(algo))
			require.NoError(t, err)
			mats = append(mats, d)
		}

		n := g.Len()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want, wantOK := mats[0].At(i, j)
				for k := 1; k < len(mats); k++ {
					got, ok := mats[k].At(i, j)
					require.Equal(t, wantOK, ok, "seed=%d %s (%d,%d)", seed, allAlgorithms[k], i, j)
					require.Equal(t, want, got, "seed=%d %s (%d,%d)", seed, allAlgorithms[k], i, j)
				}
				// Generated tunnels are bidirectional.
				back, backOK := mats[0].At(j, i)
				assert.Equal(t, wantOK, backOK)
				assert.Equal(t, want, back)
				if !wantOK {
					continue
				}
				// Triangle inequality through every intermediate.
				for m := 0; m < n; m++ {
					a, okA := mats[0].At(i, m)
					b, okB := mats[0].At(m, j)
					if okA && okB {
						assert.LessOrEqual(t, want, a+b)
					}
				}
			}
		}
		assert.Positive(t, mats[1].Passes())
		assert.Zero(t, mats[0].Passes())
	}
}

// TestBuild_MatchesGonum compares against gonum's Floyd–Warshall.
func TestBuild_MatchesGonum(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(99)},
		builder.RandomSparse(30, 0.08),
	)
	require.NoError(t, err)

	dg := simple.NewDirectedGraph()
	for i := 0; i < g.Len(); i++ {
		dg.AddNode(simple.Node(i))
	}
	for i := 0; i < g.Len(); i++ {
		for _, j := range g.NeighborIndices(i) {
			dg.SetEdge(dg.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}
	oracle, ok := path.FloydWarshall(dg)
	require.True(t, ok)

	d, err := matrix.Build(g)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			w := oracle.Weight(int64(i), int64(j))
			got, ok := d.At(i, j)
			if math.IsInf(w, 1) {
				assert.False(t, ok, "(%d,%d)", i, j)
				continue
			}
			require.True(t, ok, "(%d,%d)", i, j)
			assert.Equal(t, int(w), got, "(%d,%d)", i, j)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(60, 0.05),
	)
	if err != nil {
		b.Fatal(err)
	}
	for _, algo := range allAlgorithms {
		b.Run(algo.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Build(g, matrix.WithAlgorithm(algo)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
