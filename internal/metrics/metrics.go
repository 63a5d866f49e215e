// Package metrics exposes Prometheus collectors for the serving layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/tng/pkg/domain"
)

// Metrics holds the engine-facing collectors. One instance is shared by
// all handlers of a server.
type Metrics struct {
	RunsTotal  *prometheus.CounterVec
	StepsTotal prometheus.Counter
	RunSteps   prometheus.Histogram
}

// New registers the collectors with reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tng_runs_total",
			Help: "Completed runs by outcome.",
		}, []string{"outcome"}),
		StepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tng_steps_total",
			Help: "Transitions applied across all runs.",
		}),
		RunSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tng_run_steps",
			Help:    "Transitions applied per run.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
	}
}

// ObserveRun records a completed run.
func (m *Metrics) ObserveRun(res *domain.Result) {
	m.RunsTotal.WithLabelValues(string(res.Outcome)).Inc()
	m.StepsTotal.Add(float64(res.Steps))
	m.RunSteps.Observe(float64(res.Steps))
}
