package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// TransitionsTotal counts applied preview phase transitions
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "previewd",
			Name:      "transitions_total",
			Help:      "Total number of applied preview phase transitions",
		},
		[]string{"from", "to"},
	)

	// StaleSignalsDiscarded counts provider signals dropped because their
	// generation was superseded before they arrived
	StaleSignalsDiscarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "previewd",
			Name:      "stale_signals_total",
			Help:      "Total number of provider signals discarded by generation mismatch",
		},
		[]string{"signal"},
	)

	// ProbesTotal counts provider load attempts by outcome
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "previewd",
			Name:      "probes_total",
			Help:      "Total number of provider load attempts",
		},
		[]string{"provider", "result"},
	)

	// ProviderFailures counts provider load failures
	ProviderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "previewd",
			Name:      "provider_failures_total",
			Help:      "Total number of provider load failures",
		},
		[]string{"provider"},
	)

	// WidgetsActive tracks the number of mounted preview widgets
	WidgetsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "previewd",
			Name:      "widgets_active",
			Help:      "Number of currently mounted preview widgets",
		},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		// Register metrics, ignoring errors if already registered
		prometheus.DefaultRegisterer.Register(TransitionsTotal)
		prometheus.DefaultRegisterer.Register(StaleSignalsDiscarded)
		prometheus.DefaultRegisterer.Register(ProbesTotal)
		prometheus.DefaultRegisterer.Register(ProviderFailures)
		prometheus.DefaultRegisterer.Register(WidgetsActive)
	})
}
