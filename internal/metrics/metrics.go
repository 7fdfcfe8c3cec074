package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for upstream calls
const (
	ResultOK        = "ok"
	ResultHTTPError = "http_error"
	ResultTransport = "transport_error"
)

var latencyBuckets = []float64{
	0.005, 0.01, 0.025, 0.05,
	0.1, 0.25, 0.5,
	1, 2.5, 5, 10,
}

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dms",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests broken down by route, method and status code.",
	}, []string{"route", "method", "code"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dms",
		Subsystem: "http",
		Name:      "latency_seconds",
		Help:      "Latency distribution for HTTP requests.",
		Buckets:   latencyBuckets,
	}, []string{"route", "method"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dms",
		Subsystem: "formdesign",
		Name:      "requests_total",
		Help:      "Total number of FormDesign API calls broken down by endpoint and result.",
	}, []string{"endpoint", "result"})

	upstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dms",
		Subsystem: "formdesign",
		Name:      "latency_seconds",
		Help:      "Latency distribution for FormDesign API calls.",
		Buckets:   latencyBuckets,
	}, []string{"endpoint"})

	fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dms",
		Subsystem: "formdesign",
		Name:      "fallbacks_total",
		Help:      "Number of proxy responses answered with fallback data.",
	}, []string{"endpoint"})
)

// ObserveHTTP records one served request
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveUpstream records one FormDesign API call
func ObserveUpstream(endpoint, result string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, result).Inc()
	upstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveFallback records a proxy answer that carried fallback data
func ObserveFallback(endpoint string) {
	fallbacks.WithLabelValues(endpoint).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
