package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tng/internal/metrics"
	"github.com/aretw0/tng/pkg/domain"
)

func TestObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRun(&domain.Result{Outcome: domain.OutcomeHalted, Steps: 42})
	m.ObserveRun(&domain.Result{Outcome: domain.OutcomeHalted, Steps: 8})
	m.ObserveRun(&domain.Result{Outcome: domain.OutcomeStuck, Steps: 1})

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RunsTotal.WithLabelValues("halted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RunsTotal.WithLabelValues("stuck")))
	assert.Equal(t, float64(51), testutil.ToFloat64(m.StepsTotal))
}
