// SPDX-License-Identifier: MIT
package optimizer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/core"
	"github.com/katalvlaran/volcano/internal/fixture"
	"github.com/katalvlaran/volcano/matrix"
	"github.com/katalvlaran/volcano/optimizer"
	"github.com/katalvlaran/volcano/optimizer/mocks"
	"github.com/katalvlaran/volcano/search"
)

func newOptimizer(t *testing.T, g *core.Graph, opts ...optimizer.Option) *optimizer.Optimizer {
	t.Helper()
	d, err := matrix.Build(g)
	require.NoError(t, err)
	e, err := search.NewEngine(g, d)
	require.NoError(t, err)
	o, err := optimizer.New(e, e.FlowSet(), opts...)
	require.NoError(t, err)

	return o
}

func TestPartitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		flow search.Set
		want int
	}{
		{0, 1},
		{search.SetOf(3), 1},
		{search.SetOf(0, 5), 3},
		{search.FullSet(4), 11},
		{search.SetOf(1, 2, 7, 9, 40), 16},
		{search.FullSet(6), 42},
	}
	for _, tc := range cases {
		n := 0
		seen := make(map[search.Set]bool)
		for a, b := range optimizer.Partitions(tc.flow) {
			n++
			assert.Zero(t, a.Intersect(b), "disjoint")
			assert.Equal(t, tc.flow, a.Union(b), "covering")
			assert.LessOrEqual(t, a.Len(), tc.flow.Len()/2)
			assert.False(t, seen[a], "A=%s repeated", a)
			seen[a] = true
		}
		assert.Equal(t, tc.want, n, "flow=%s", tc.flow)
		assert.Equal(t, tc.want, optimizer.PartitionCount(tc.flow))
	}
}

func TestPartitions_StopsEarly(t *testing.T) {
	t.Parallel()

	n := 0
	for a := range optimizer.Partitions(search.FullSet(10)) {
		if n == 0 {
			assert.Equal(t, search.Set(0), a)
		}
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := optimizer.New(nil, 0)
	assert.ErrorIs(t, err, optimizer.ErrNilSearcher)

	ctrl := gomock.NewController(t)
	_, err = optimizer.New(mocks.NewMockSearcher(ctrl), 0, optimizer.WithWorkers(0))
	assert.ErrorIs(t, err, optimizer.ErrOptionViolation)
}

func TestReference(t *testing.T) {
	t.Parallel()

	o := newOptimizer(t, fixture.MustGraph(), optimizer.WithWorkers(4))
	ctx := context.Background()

	single, err := o.SingleActor(ctx, fixture.ReferenceStart, fixture.ReferenceMinutes)
	require.NoError(t, err)
	assert.Equal(t, fixture.ReferenceSingle, single)

	pair, err := o.TwoActor(ctx, fixture.ReferenceStart, fixture.ReferencePairMinutes)
	require.NoError(t, err)
	assert.Equal(t, fixture.ReferencePair, pair.Value)
	assert.Equal(t, 42, pair.Partitions)
	assert.Zero(t, pair.A.Intersect(pair.B))
}

// TestPairNotWorseThanSingle checks that a second actor never hurts at equal minutes.
func TestPairNotWorseThanSingle(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSparseRate(0.45, 1, 25)},
			builder.Cycle(12),
			builder.RandomSparse(12, 0.1),
		)
		require.NoError(t, err)
		o := newOptimizer(t, g, optimizer.WithWorkers(3))

		for _, minutes := range []int{0, 5, 14} {
			single, err := o.SingleActor(context.Background(), "AA", minutes)
			require.NoError(t, err)
			pair, err := o.TwoActor(context.Background(), "AA", minutes)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, pair.Value, single, "seed=%d minutes=%d", seed, minutes)
		}
	}
}

func TestTwoActor_WithMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := mocks.NewMockSearcher(ctrl)
	flow := search.FullSet(4)

	// Every valve is worth 10 wherever it lands, so all splits tie.
	m.EXPECT().
		MaxReleaseStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q search.Query) (int, search.Stats, error) {
			return 10 * q.Restrict.Mask().Len(), search.Stats{Nodes: 1}, nil
		}).
		Times(2 * optimizer.PartitionCount(flow))

	o, err := optimizer.New(m, flow, optimizer.WithWorkers(2))
	require.NoError(t, err)
	pair, err := o.TwoActor(context.Background(), "AA", 26)
	require.NoError(t, err)
	assert.Equal(t, 40, pair.Value)
	assert.Equal(t, search.Set(0), pair.A)
	assert.Equal(t, flow, pair.B)
	assert.Equal(t, 11, pair.Partitions)
}

func TestTwoActor_PropagatesError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := mocks.NewMockSearcher(ctrl)
	boom := errors.New("boom")

	m.EXPECT().
		MaxReleaseStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q search.Query) (int, search.Stats, error) {
			if q.Restrict.Mask() == search.SetOf(2) {
				return 0, search.Stats{}, boom
			}
			return 1, search.Stats{}, nil
		}).
		AnyTimes()

	o, err := optimizer.New(m, search.FullSet(5), optimizer.WithWorkers(1))
	require.NoError(t, err)
	_, err = o.TwoActor(context.Background(), "AA", 26)
	assert.ErrorIs(t, err, boom)
}

func TestSingleActor_WithMock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := mocks.NewMockSearcher(ctrl)
	m.EXPECT().
		MaxReleaseStats(gomock.Any(), search.Query{Start: "AA", Minutes: 30}).
		Return(77, search.Stats{Nodes: 3}, nil)

	o, err := optimizer.New(m, search.FullSet(3))
	require.NoError(t, err)
	v, err := o.SingleActor(context.Background(), "AA", 30)
	require.NoError(t, err)
	assert.Equal(t, 77, v)
}

func TestTwoActor_Cancelled(t *testing.T) {
	t.Parallel()

	o := newOptimizer(t, fixture.MustGraph())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := o.TwoActor(ctx, "AA", 26)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkTwoActor(b *testing.B) {
	g := fixture.MustGraph()
	d, _ := matrix.Build(g)
	e, _ := search.NewEngine(g, d)
	o, _ := optimizer.New(e, e.FlowSet())
	for i := 0; i < b.N; i++ {
		if _, err := o.TwoActor(context.Background(), "AA", 26); err != nil {
			b.Fatal(err)
		}
	}
}
