// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors shared by the solver.
//
// Collectors are registered on the default registry through promauto, so
// importing the package is enough to expose them; the CLI writes them out
// with WriteTextfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search modes used as the "mode" label.
const (
	ModeSingle = "single"
	ModePair   = "pair"
)

// Solve phases used as the "phase" label.
const (
	PhaseGraph     = "graph"
	PhaseDistances = "distances"
	PhaseSingle    = "single"
	PhasePair      = "pair"
)

var (
	// SearchNodes counts expanded search states, labeled by mode.
	SearchNodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volcano_search_nodes_total",
			Help: "Total number of search states expanded",
		},
		[]string{"mode"},
	)

	// SearchPruned counts states cut by the upper bound, labeled by mode.
	SearchPruned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volcano_search_pruned_total",
			Help: "Total number of search states cut by the upper bound",
		},
		[]string{"mode"},
	)

	// SearchCalls counts MaxRelease invocations, labeled by mode.
	SearchCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "volcano_search_calls_total",
			Help: "Total number of restricted or unrestricted searches run",
		},
		[]string{"mode"},
	)

	// Partitions counts evaluated two-actor partitions.
	Partitions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "volcano_partitions_total",
			Help: "Total number of valve partitions evaluated",
		},
	)

	// SolveDuration measures wall time per solve phase.
	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "volcano_solve_duration_seconds",
			Help:    "Duration of solver phases in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"phase"},
	)
)

// ObserveSearch records the counters of one search call.
func ObserveSearch(mode string, nodes, pruned int64) {
	SearchCalls.WithLabelValues(mode).Inc()
	SearchNodes.WithLabelValues(mode).Add(float64(nodes))
	SearchPruned.WithLabelValues(mode).Add(float64(pruned))
}

// ObservePhase records how long a solve phase took since start.
func ObservePhase(phase string, start time.Time) {
	SolveDuration.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

// WriteTextfile dumps the default registry in text exposition format to path.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
