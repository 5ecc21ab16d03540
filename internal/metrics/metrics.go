package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// GenerationParses counts breakdown responses by the parse tier that
	// produced the subtask list. A rising "fallback" share means the
	// backend stopped honoring the JSON-array-only prompt.
	GenerationParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktree_generation_parses_total",
			Help: "Subtask generations by parse tier (json or fallback)",
		},
		[]string{"tier"},
	)

	// GenerationFailures counts generation attempts that produced no
	// subtasks at all.
	GenerationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tasktree_generation_failures_total",
			Help: "Subtask generations that returned an empty result",
		},
	)

	// IdentityEvents counts verified identity webhook deliveries by type.
	IdentityEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasktree_identity_events_total",
			Help: "Verified identity lifecycle events by type",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(GenerationParses)
	prometheus.MustRegister(GenerationFailures)
	prometheus.MustRegister(IdentityEvents)
}
