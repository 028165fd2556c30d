// Package metrics provides Prometheus metrics for workout summarization.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default histogram buckets.
var (
	defaultDistanceBuckets = []float64{0.5, 1, 2, 5, 10, 21.1, 42.2, 100}
	defaultCaloriesBuckets = []float64{50, 100, 200, 300, 500, 800, 1200, 2000}
	defaultBatchBuckets    = []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000}
)

// Manager manages all Prometheus metrics of the summarizer.
type Manager struct {
	namespace       string
	subsystem       string
	distanceBuckets []float64
	caloriesBuckets []float64
	constLabels     map[string]string
	registry        *prometheus.Registry

	// Intake
	packagesReceived  prometheus.Counter
	packagesDuplicate prometheus.Counter
	packageErrors     *prometheus.CounterVec

	// Workout results
	summaries       *prometheus.CounterVec
	workoutDistance *prometheus.HistogramVec
	workoutCalories *prometheus.HistogramVec
	workoutHours    *prometheus.CounterVec

	// Batches
	batches       *prometheus.CounterVec
	batchDuration prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry
// the metrics go to a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "fittrack",
		subsystem:       "workouts",
		distanceBuckets: defaultDistanceBuckets,
		caloriesBuckets: defaultCaloriesBuckets,
		constLabels:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.packagesReceived = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "packages_received_total",
		Help:        "Total number of sensor packages received",
		ConstLabels: m.constLabels,
	})

	m.packagesDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "packages_duplicate_total",
		Help:        "Total number of retransmitted packages that were skipped",
		ConstLabels: m.constLabels,
	})

	m.packageErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "package_errors_total",
			Help:        "Total number of packages rejected by the dispatcher",
			ConstLabels: m.constLabels,
		},
		[]string{"code", "error_type"},
	)

	m.summaries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "summaries_total",
			Help:        "Total number of workout summaries produced",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.workoutDistance = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "distance_km",
			Help:        "Distance covered per workout in km",
			Buckets:     m.distanceBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.workoutCalories = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "calories_kcal",
			Help:        "Calories spent per workout in kcal",
			Buckets:     m.caloriesBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.workoutHours = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "duration_hours_total",
			Help:        "Total workout time in hours",
			ConstLabels: m.constLabels,
		},
		[]string{"kind"},
	)

	m.batches = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "batches_total",
			Help:        "Total number of processed batches by outcome",
			ConstLabels: m.constLabels,
		},
		[]string{"outcome"},
	)

	m.batchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "batch_duration_milliseconds",
		Help:        "Time spent summarizing one batch in milliseconds",
		Buckets:     defaultBatchBuckets,
		ConstLabels: m.constLabels,
	})
}

// RecordPackageReceived increments the received packages counter.
func (m *Manager) RecordPackageReceived() { m.packagesReceived.Inc() }

// RecordPackageDuplicate increments the duplicate packages counter.
func (m *Manager) RecordPackageDuplicate() { m.packagesDuplicate.Inc() }

// RecordPackageError counts a rejected package by its code and error type.
func (m *Manager) RecordPackageError(code, errorType string) {
	m.packageErrors.WithLabelValues(code, errorType).Inc()
}

// RecordSummary records the statistics of one summarized workout.
func (m *Manager) RecordSummary(kind string, hours, distance, calories float64) {
	m.summaries.WithLabelValues(kind).Inc()
	m.workoutHours.WithLabelValues(kind).Add(hours)
	m.workoutDistance.WithLabelValues(kind).Observe(distance)
	m.workoutCalories.WithLabelValues(kind).Observe(calories)
}

// RecordBatch records the outcome and duration of one batch.
func (m *Manager) RecordBatch(outcome string, durationMs float64) {
	m.batches.WithLabelValues(outcome).Inc()
	m.batchDuration.Observe(durationMs)
}

// Registry returns the registry the manager's metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the manager's metrics to path in the text exposition
// format, for pickup by a node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTextfile, path, err)
	}
	return nil
}

// Default returns the process wide manager.
func Default() *Manager { return globalManager }

// RecordPackageReceived increments the received packages counter.
func RecordPackageReceived() { globalManager.RecordPackageReceived() }

// RecordPackageDuplicate increments the duplicate packages counter.
func RecordPackageDuplicate() { globalManager.RecordPackageDuplicate() }

// RecordPackageError counts a rejected package by its code and error type.
func RecordPackageError(code, errorType string) { globalManager.RecordPackageError(code, errorType) }

// RecordSummary records the statistics of one summarized workout.
func RecordSummary(kind string, hours, distance, calories float64) {
	globalManager.RecordSummary(kind, hours, distance, calories)
}

// RecordBatch records the outcome and duration of one batch.
func RecordBatch(outcome string, durationMs float64) { globalManager.RecordBatch(outcome, durationMs) }

// WriteTextfile writes the global metrics to path.
func WriteTextfile(path string) error { return globalManager.WriteTextfile(path) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
