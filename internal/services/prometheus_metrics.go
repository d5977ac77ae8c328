package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	dashboardRecomputes  *prometheus.CounterVec
	dashboardDuration    prometheus.Histogram
	categoriesOverLimit  prometheus.Gauge
	budgetReplacements   *prometheus.CounterVec
	transactionMutations *prometheus.CounterVec
	feedSubscribers      prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors with registerer. A nil registerer
// uses the default registry that /metrics serves.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		dashboardRecomputes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_recompute_total",
				Help: "Total number of dashboard recomputations",
			},
			[]string{"status"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_recompute_duration_milliseconds",
				Help:    "Dashboard recomputation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		categoriesOverLimit: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_categories_over_limit",
				Help: "Number of budget categories over their limit in the last recomputed period",
			},
		),
		budgetReplacements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_replacements_total",
				Help: "Total number of budget configuration replacements",
			},
			[]string{"status"},
		),
		transactionMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_mutations_total",
				Help: "Total number of transaction mutations",
			},
			[]string{"operation"},
		),
		feedSubscribers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_feed_subscribers",
				Help: "Current number of live transaction stream subscribers",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "dashboard_recompute_total":
		m.dashboardRecomputes.WithLabelValues(tags["status"]).Inc()
	case "budget_replacements_total":
		if status := tags["status"]; status != "" {
			m.budgetReplacements.WithLabelValues(status).Inc()
		}
	case "transactions_mutations_total":
		if operation := tags["operation"]; operation != "" {
			m.transactionMutations.WithLabelValues(operation).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard_recompute":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "budget_categories_over_limit":
		m.categoriesOverLimit.Set(value)
	case "transaction_feed_subscribers":
		m.feedSubscribers.Set(value)
	}
}

// NoopMetrics discards everything. Used by the CLI and in tests.
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}

func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}

func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}
