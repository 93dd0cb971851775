package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// a no-op so tests can construct handlers without touching the default
// registry.
type Metrics struct {
	ReceiptsProcessed prometheus.Counter
	ReceiptsRejected  prometheus.Counter
	PointsServed      prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ReceiptsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "receipts_processed_total",
			Help: "Total number of receipts accepted into the store",
		}),
		ReceiptsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "receipts_rejected_total",
			Help: "Total number of submissions rejected as malformed or unacceptable",
		}),
		PointsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "receipt_points_served_total",
			Help: "Total number of points lookups answered successfully",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) IncReceiptsProcessed() {
	if m == nil {
		return
	}
	m.ReceiptsProcessed.Inc()
}

func (m *Metrics) IncReceiptsRejected() {
	if m == nil {
		return
	}
	m.ReceiptsRejected.Inc()
}

func (m *Metrics) IncPointsServed() {
	if m == nil {
		return
	}
	m.PointsServed.Inc()
}

func (m *Metrics) ObserveRequestDuration(route string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
