// Package metrics holds the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sync outcomes used as label values.
const (
	OutcomeSuccess         = "success"
	OutcomeNotConfigured   = "not_configured"
	OutcomeFeedUnavailable = "feed_unavailable"
	OutcomeError           = "error"
)

type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authRejections      *prometheus.CounterVec

	syncRuns          *prometheus.CounterVec
	importedProblems  prometheus.Counter
	skippedDuplicates prometheus.Counter
}

// New creates collectors and registers them in reg. Pass prometheus.DefaultRegisterer
// to expose them through promhttp.Handler.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		authRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_rejections_total",
				Help: "Total number of unauthorized requests",
			},
			[]string{"reason"},
		),
		syncRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "codetrack_sync_runs_total",
				Help: "Commit feed sync runs by outcome",
			},
			[]string{"outcome"},
		),
		importedProblems: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "codetrack_imported_problems_total",
			Help: "Problem logs created from commits",
		}),
		skippedDuplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "codetrack_skipped_duplicates_total",
			Help: "Parsed commits skipped because the problem was already logged that day",
		}),
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authRejections,
		m.syncRuns,
		m.importedProblems,
		m.skippedDuplicates,
	)
	return m
}

// ObserveRequest records one served request. path must be a route pattern, not a raw URL.
func (m *Metrics) ObserveRequest(path, method string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(path, method).Observe(took.Seconds())
	switch status {
	case 401:
		m.authRejections.WithLabelValues("401_unauthorized").Inc()
	case 403:
		m.authRejections.WithLabelValues("403_forbidden").Inc()
	}
}

func (m *Metrics) ObserveSync(outcome string, imported, skipped int) {
	if m == nil {
		return
	}
	m.syncRuns.WithLabelValues(outcome).Inc()
	m.importedProblems.Add(float64(imported))
	m.skippedDuplicates.Add(float64(skipped))
}
