package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationLatency *prometheus.HistogramVec
	attemptsUsed      prometheus.Histogram
	generationsTotal  *prometheus.CounterVec
	failuresTotal     *prometheus.CounterVec
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.HistogramVec, prometheus.Histogram, *prometheus.CounterVec, *prometheus.CounterVec) {
	lat := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teamsplit_generation_duration_seconds",
			Help:    "Wall time of one generation call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	att := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "teamsplit_generation_attempts",
			Help:    "Allocation attempts consumed per generation call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		},
	)
	gen := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamsplit_generations_total",
			Help: "Number of generation calls",
		},
		[]string{"outcome"},
	)
	fail := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamsplit_generation_failures_total",
			Help: "Number of failed generation calls by error kind",
		},
		[]string{"kind"},
	)
	return lat, att, gen, fail
}

func init() {
	generationLatency, attemptsUsed, generationsTotal, failuresTotal = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers engine metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(generationLatency, attemptsUsed, generationsTotal, failuresTotal)
}

// ResetMetrics reinitializes metric collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	generationLatency, attemptsUsed, generationsTotal, failuresTotal = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}

func observeGeneration(outcome string, seconds float64, attempts int) {
	generationLatency.WithLabelValues(outcome).Observe(seconds)
	attemptsUsed.Observe(float64(attempts))
	generationsTotal.WithLabelValues(outcome).Inc()
}
