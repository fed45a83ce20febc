package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the fileserver.
type Metrics struct {
	// Operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Registry metrics
	RegistryEntries prometheus.Gauge
	RegistryDropped prometheus.Counter

	// Access control metrics
	AccessChecks *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates a metrics collector on a specific registerer.
// Tests pass their own registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_operations_total",
				Help: "Total number of file operations",
			},
			[]string{"op", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileserver_operation_duration_seconds",
				Help:    "File operation duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"op"},
		),
		RegistryEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileserver_registry_entries",
				Help: "Number of entries in the file registry",
			},
		),
		RegistryDropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fileserver_registry_dropped_total",
				Help: "Total number of inserts dropped at registry capacity",
			},
		),
		AccessChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_access_checks_total",
				Help: "Total number of access control decisions",
			},
			[]string{"allowed"},
		),
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileserver_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}
}

// RecordOperation records an operation outcome with its duration.
func (m *Metrics) RecordOperation(op, status string, duration time.Duration) {
	m.OperationsTotal.WithLabelValues(op, status).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordAccessCheck records an access control decision.
func (m *Metrics) RecordAccessCheck(allowed bool) {
	label := "false"
	if allowed {
		label = "true"
	}
	m.AccessChecks.WithLabelValues(label).Inc()
}

// SetRegistryEntries updates the registry size gauge.
func (m *Metrics) SetRegistryEntries(n int) {
	m.RegistryEntries.Set(float64(n))
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// Timer measures operation duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	op      string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, op string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		op:      op,
	}
}

// Stop stops the timer and records the duration
func (t *Timer) Stop(status string) {
	t.metrics.RecordOperation(t.op, status, time.Since(t.start))
}
