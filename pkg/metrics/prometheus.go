package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository Metrics using Prometheus.
type Recorder struct {
	providerCalls  *prometheus.CounterVec
	providerErrors *prometheus.CounterVec
	lastPrice      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_provider_calls_total",
				Help: "Total number of upstream provider calls",
			},
			[]string{"provider", "operation"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockscope_provider_errors_total",
				Help: "Total number of failed upstream provider calls",
			},
			[]string{"provider", "operation"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockscope_last_price",
				Help: "Last observed quote price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordProviderCall records an upstream provider call.
func (r *Recorder) RecordProviderCall(provider, operation string) {
	r.providerCalls.WithLabelValues(provider, operation).Inc()
}

// RecordProviderError records a failed upstream provider call.
func (r *Recorder) RecordProviderError(provider, operation string) {
	r.providerErrors.WithLabelValues(provider, operation).Inc()
}

// RecordLastPrice records the last quote price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
