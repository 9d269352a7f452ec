package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano"
	"github.com/katalvlaran/volcano/builder"
	"github.com/katalvlaran/volcano/cmd/volcano/commands"
	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/internal/fixture"
	"github.com/katalvlaran/volcano/parser"
)

type mockApp struct {
	solveFunc func(ctx context.Context, r io.Reader, sc config.Scenario) (volcano.Result, error)
}

func (m *mockApp) SolveReader(
	ctx context.Context,
	r io.Reader,
	sc config.Scenario,
	_ ...volcano.Option,
) (volcano.Result, error) {
	return m.solveFunc(ctx, r, sc)
}

func execute(t *testing.T, a commands.Application, stdin string, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetArgs(args)
	cli.SetInput(strings.NewReader(stdin))
	cli.SetOutput(&out, &errOut)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Solve(t *testing.T) {
	t.Run("wires flags into the scenario", func(t *testing.T) {
		var captured config.Scenario
		var input string
		mock := &mockApp{solveFunc: func(_ context.Context, r io.Reader, sc config.Scenario) (volcano.Result, error) {
			captured = sc
			raw, _ := io.ReadAll(r)
			input = string(raw)
			return volcano.Result{Single: 7, Pair: 9}, nil
		}}

		out, err := execute(t, mock, "records",
			"solve", "-", "--start", "BB", "--minutes", "12", "--pair-minutes", "8",
			"--workers", "3", "--distance", "bfs", "--no-bound")
		require.NoError(t, err)
		assert.Equal(t, "7\n9\n", out)
		assert.Equal(t, "records", input)
		assert.Equal(t, config.Scenario{
			Start:            "BB",
			PrimaryMinutes:   12,
			SecondaryMinutes: 8,
			Workers:          3,
			Distance:         "bfs",
			Bound:            "none",
		}, captured)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte("start: CC\nprimary_minutes: 10\nworkers: 2\n"), 0o600))

		var captured config.Scenario
		mock := &mockApp{solveFunc: func(_ context.Context, _ io.Reader, sc config.Scenario) (volcano.Result, error) {
			captured = sc
			return volcano.Result{}, nil
		}}

		_, err := execute(t, mock, "", "solve", "--config", path, "--minutes", "11")
		require.NoError(t, err)
		assert.Equal(t, "CC", captured.Start)
		assert.Equal(t, 11, captured.PrimaryMinutes)
		assert.Equal(t, config.DefaultSecondaryMinutes, captured.SecondaryMinutes)
		assert.Equal(t, 2, captured.Workers)
	})

	t.Run("rejects an invalid scenario before solving", func(t *testing.T) {
		mock := &mockApp{solveFunc: func(context.Context, io.Reader, config.Scenario) (volcano.Result, error) {
			panic("should not be called")
		}}

		_, err := execute(t, mock, "", "solve", "--distance", "dijkstra")
		assert.ErrorIs(t, err, config.ErrInvalidScenario)
	})

	t.Run("returns error on solve failure", func(t *testing.T) {
		mock := &mockApp{solveFunc: func(context.Context, io.Reader, config.Scenario) (volcano.Result, error) {
			return volcano.Result{}, errors.New("simulated error")
		}}

		_, err := execute(t, mock, "", "solve")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("prints JSON", func(t *testing.T) {
		mock := &mockApp{solveFunc: func(context.Context, io.Reader, config.Scenario) (volcano.Result, error) {
			return volcano.Result{Single: 1651, Pair: 1707, Partitions: 42}, nil
		}}

		out, err := execute(t, mock, "", "solve", "--json")
		require.NoError(t, err)
		var got map[string]int
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 1651, got["single"])
		assert.Equal(t, 1707, got["pair"])
		assert.Equal(t, 42, got["partitions"])
	})
}

func TestCommands_SolveEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "valves.txt")
	require.NoError(t, os.WriteFile(input, []byte(fixture.ReferenceText), 0o600))
	metricsPath := filepath.Join(dir, "volcano.prom")

	out, err := execute(t, commands.DefaultApp(), "", "solve", input, "--metrics-file", metricsPath, "-v")
	require.NoError(t, err)
	assert.Equal(t, "1651\n1707\n", out)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "volcano_search_calls_total")
}

func TestCommands_Generate(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "", "generate", "--shape", "cycle", "-n", "5", "--seed", "4")
	require.NoError(t, err)
	valves, err := parser.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, valves, 5)
	assert.Equal(t, "AA", valves[0].ID)
	for _, v := range valves {
		assert.Len(t, v.Tunnels, 2)
	}

	again, err := execute(t, mock, "", "generate", "--shape", "cycle", "-n", "5", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = execute(t, mock, "", "generate", "--shape", "grid", "--rows", "2", "--cols", "3")
	require.NoError(t, err)
	valves, err = parser.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, valves, 6)

	_, err = execute(t, mock, "", "generate", "--shape", "hexagon")
	assert.ErrorIs(t, err, commands.ErrInvalidFlag)

	_, err = execute(t, mock, "", "generate", "--max-rate", "0")
	assert.ErrorIs(t, err, commands.ErrInvalidFlag)

	_, err = execute(t, mock, "", "generate", "--shape", "cycle", "-n", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCommands_GenerateThenSolve(t *testing.T) {
	out, err := execute(t, &mockApp{}, "", "generate", "--shape", "random", "-n", "12", "--density", "0.3", "--seed", "9")
	require.NoError(t, err)

	res, err := execute(t, commands.DefaultApp(), out, "solve", "--minutes", "10", "--pair-minutes", "8")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(res), "\n"), 2)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "volcano version dev")
}
