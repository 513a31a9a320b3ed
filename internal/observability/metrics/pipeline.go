package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PipelineMetrics struct {
	registry *prometheus.Registry

	requestsTotal  *prometheus.CounterVec
	rateLimitWaits prometheus.Counter
	termsAbandoned prometheus.Counter
	billsFetched   prometheus.Counter
	billsUnique    prometheus.Counter
	billsRelevant  prometheus.Counter
	runDuration    prometheus.Histogram
}

func NewPipelineMetrics(service string) *PipelineMetrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "search",
			Name:      "http_requests_total",
			Help:      "Upstream search requests by HTTP status code.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"status"},
	)
	rateLimitWaits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "search",
			Name:      "rate_limit_waits_total",
			Help:      "Cool-down waits triggered by upstream rate limiting.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	termsAbandoned := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "search",
			Name:      "terms_abandoned_total",
			Help:      "Search terms abandoned after unrecoverable request failures.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	billsFetched := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "pipeline",
			Name:      "bills_fetched_total",
			Help:      "Raw bill records fetched across all terms and pages.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	billsUnique := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "pipeline",
			Name:      "bills_unique_total",
			Help:      "Bill records remaining after deduplication.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	billsRelevant := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "legtracker",
			Subsystem: "pipeline",
			Name:      "bills_relevant_total",
			Help:      "Bill records accepted by the relevance filter.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	runDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "legtracker",
			Subsystem: "pipeline",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a full pipeline run.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(requestsTotal, rateLimitWaits, termsAbandoned, billsFetched, billsUnique, billsRelevant, runDuration)

	return &PipelineMetrics{
		registry:       registry,
		requestsTotal:  requestsTotal,
		rateLimitWaits: rateLimitWaits,
		termsAbandoned: termsAbandoned,
		billsFetched:   billsFetched,
		billsUnique:    billsUnique,
		billsRelevant:  billsRelevant,
		runDuration:    runDuration,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) ObserveRequest(statusCode string) {
	m.requestsTotal.WithLabelValues(statusCode).Inc()
}

func (m *PipelineMetrics) ObserveRateLimitWait() {
	m.rateLimitWaits.Inc()
}

func (m *PipelineMetrics) ObserveTermAbandoned() {
	m.termsAbandoned.Inc()
}

func (m *PipelineMetrics) ObserveCounts(fetched, unique, relevant int) {
	m.billsFetched.Add(float64(fetched))
	m.billsUnique.Add(float64(unique))
	m.billsRelevant.Add(float64(relevant))
}

func (m *PipelineMetrics) ObserveRunDuration(d time.Duration) {
	m.runDuration.Observe(d.Seconds())
}
