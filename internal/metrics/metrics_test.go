package metrics_test

import (
	"testing"
	"time"

	"github.com/limbo/codetrack/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSync(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveSync(metrics.OutcomeSuccess, 3, 1)
	m.ObserveSync(metrics.OutcomeSuccess, 0, 0)
	m.ObserveSync(metrics.OutcomeFeedUnavailable, 0, 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := make(map[string]float64)
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				byName[f.GetName()] += c.GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, byName["codetrack_sync_runs_total"])
	assert.Equal(t, 3.0, byName["codetrack_imported_problems_total"])
	assert.Equal(t, 1.0, byName["codetrack_skipped_duplicates_total"])
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("/api/v1/logs/streak", "GET", 200, 10*time.Millisecond)
	m.ObserveRequest("/api/v1/logs/streak", "GET", 401, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "auth_rejections_total"))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveSync(metrics.OutcomeError, 1, 1)
		m.ObserveRequest("/", "GET", 500, time.Second)
	})
}
