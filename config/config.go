// SPDX-License-Identifier: MIT

// Package config loads and validates solve scenarios.
//
// A scenario names the start valve, the two time budgets and the solver
// knobs. It is read from YAML; every field is optional and falls back to
// Default, which reproduces the reference puzzle (AA, 30 and 26 minutes).
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/volcano/matrix"
	"github.com/katalvlaran/volcano/search"
)

// Reference scenario values.
const (
	DefaultStart            = "AA"
	DefaultPrimaryMinutes   = 30
	DefaultSecondaryMinutes = 26
)

var (
	// ErrConfigReadFailed is returned when the scenario file cannot be read.
	ErrConfigReadFailed = errors.New("config: read failed")

	// ErrConfigParseFailed is returned when the scenario file is not valid YAML.
	ErrConfigParseFailed = errors.New("config: parse failed")

	// ErrInvalidScenario is returned by Validate.
	ErrInvalidScenario = errors.New("config: invalid scenario")
)

// Scenario is one solve request.
type Scenario struct {
	// Start is the valve both actors start at.
	Start string `yaml:"start"`
	// PrimaryMinutes is the single-actor budget.
	PrimaryMinutes int `yaml:"primary_minutes"`
	// SecondaryMinutes is the per-actor budget of the two-actor run.
	SecondaryMinutes int `yaml:"secondary_minutes"`
	// Workers bounds concurrent partition evaluations.
	Workers int `yaml:"workers"`
	// Distance selects the matrix builder: floyd-warshall, fixpoint or bfs.
	Distance string `yaml:"distance"`
	// Bound selects search pruning: upper or none.
	Bound string `yaml:"bound"`
}

// Default returns the reference scenario.
func Default() Scenario {
	return Scenario{
		Start:            DefaultStart,
		PrimaryMinutes:   DefaultPrimaryMinutes,
		SecondaryMinutes: DefaultSecondaryMinutes,
		Workers:          runtime.GOMAXPROCS(0),
		Distance:         matrix.FloydWarshall.String(),
		Bound:            search.UpperBound.String(),
	}
}

// Load reads a YAML scenario from path on top of Default and validates it.
func Load(path string) (Scenario, error) {
	// #nosec G304 -- path is supplied by the operator
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, zerr.With(fmt.Errorf("%w: %w", ErrConfigReadFailed, err), "path", path)
	}

	return Parse(raw)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(raw []byte) (Scenario, error) {
	sc := Default()
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrConfigParseFailed, err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

// Validate reports the first invalid field.
func (s Scenario) Validate() error {
	switch {
	case s.Start == "":
		return zerr.With(ErrInvalidScenario, "field", "start")
	case s.PrimaryMinutes < 0:
		return zerr.With(zerr.With(ErrInvalidScenario, "field", "primary_minutes"), "value", s.PrimaryMinutes)
	case s.SecondaryMinutes < 0:
		return zerr.With(zerr.With(ErrInvalidScenario, "field", "secondary_minutes"), "value", s.SecondaryMinutes)
	case s.Workers < 1:
		return zerr.With(zerr.With(ErrInvalidScenario, "field", "workers"), "value", s.Workers)
	}
	if _, err := s.Algorithm(); err != nil {
		return zerr.With(zerr.With(ErrInvalidScenario, "field", "distance"), "value", s.Distance)
	}
	if _, err := s.BoundPolicy(); err != nil {
		return zerr.With(zerr.With(ErrInvalidScenario, "field", "bound"), "value", s.Bound)
	}

	return nil
}

// Algorithm resolves the Distance field.
func (s Scenario) Algorithm() (matrix.Algorithm, error) {
	return matrix.ParseAlgorithm(s.Distance)
}

// BoundPolicy resolves the Bound field.
func (s Scenario) BoundPolicy() (search.Bound, error) {
	return search.ParseBound(s.Bound)
}
