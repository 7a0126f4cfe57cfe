package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finara"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	relayerTransactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "relayer",
			Name:      "transactions_total",
			Help:      "Total number of relayer transactions by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	relayerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "relayer",
			Name:      "transaction_duration_seconds",
			Help:      "Time from queueing a relayer transaction to its confirmation.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4m
		},
		[]string{"operation"},
	)

	tokenizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tokenization",
			Name:      "requests_total",
			Help:      "Total number of tokenization requests by final state.",
		},
		[]string{"state"},
	)

	reconciledAssets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "reconciled_assets_total",
			Help:      "Total number of orphaned assets marked failed by the sweeper.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		relayerTransactions,
		relayerDuration,
		tokenizations,
		reconciledAssets,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted tracks an in-flight request and returns the func that records its completion.
// path should be the route template, not the raw URL, to keep label cardinality bounded.
func RequestStarted(method string) func(path string, status int) {
	start := time.Now()
	httpInFlight.Inc()

	return func(path string, status int) {
		httpInFlight.Dec()
		if path == "" {
			path = "unmatched"
		}
		method := strings.ToUpper(method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordRelayerTransaction records the outcome of a relayer transaction
func RecordRelayerTransaction(operation, outcome string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	relayerTransactions.WithLabelValues(operation, outcome).Inc()
	relayerDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTokenization records the final state of a tokenization request
func RecordTokenization(state string) {
	tokenizations.WithLabelValues(state).Inc()
}

// RecordReconciledAsset counts an orphaned asset resolved by the sweeper
func RecordReconciledAsset() {
	reconciledAssets.Inc()
}
