// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcano/config"
	"github.com/katalvlaran/volcano/matrix"
	"github.com/katalvlaran/volcano/search"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	sc := config.Default()
	require.NoError(t, sc.Validate())
	assert.Equal(t, "AA", sc.Start)
	assert.Equal(t, 30, sc.PrimaryMinutes)
	assert.Equal(t, 26, sc.SecondaryMinutes)
	assert.GreaterOrEqual(t, sc.Workers, 1)

	algo, err := sc.Algorithm()
	require.NoError(t, err)
	assert.Equal(t, matrix.FloydWarshall, algo)
	bound, err := sc.BoundPolicy()
	require.NoError(t, err)
	assert.Equal(t, search.UpperBound, bound)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
start: BB
primary_minutes: 20
workers: 3
distance: fixpoint
bound: none
`), 0o600))

	sc, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Scenario{
		Start:            "BB",
		PrimaryMinutes:   20,
		SecondaryMinutes: config.DefaultSecondaryMinutes,
		Workers:          3,
		Distance:         "fixpoint",
		Bound:            "none",
	}, sc)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrConfigReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Parse([]byte("start: [unterminated"))
	assert.ErrorIs(t, err, config.ErrConfigParseFailed)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*config.Scenario){
		"empty start":      func(s *config.Scenario) { s.Start = "" },
		"negative primary": func(s *config.Scenario) { s.PrimaryMinutes = -1 },
		"negative pair":    func(s *config.Scenario) { s.SecondaryMinutes = -5 },
		"zero workers":     func(s *config.Scenario) { s.Workers = 0 },
		"unknown distance": func(s *config.Scenario) { s.Distance = "dijkstra" },
		"unknown bound":    func(s *config.Scenario) { s.Bound = "lower" },
	}
	for name, mutate := range cases {
		sc := config.Default()
		mutate(&sc)
		assert.ErrorIs(t, sc.Validate(), config.ErrInvalidScenario, name)
	}

	sc := config.Default()
	sc.PrimaryMinutes = 0
	assert.NoError(t, sc.Validate())
}
