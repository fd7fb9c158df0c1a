// Package metrics provides Prometheus metrics for the player data service.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Outcome labels shared by conversion and merge metrics.
const (
	OutcomeOK        = "ok"
	OutcomeMalformed = "malformed"
	OutcomeEmpty     = "empty"
	OutcomeRemote    = "remote_error"
	OutcomeRejected  = "rejected"

	MergeInitial = "initial"
	MergeOverlap = "overlap"
	MergeGap     = "gap"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Conversion metrics
	conversions       *prometheus.CounterVec
	conversionLatency *prometheus.HistogramVec
	skippedRecords    *prometheus.CounterVec

	// Merge metrics
	merges         *prometheus.CounterVec
	prependedItems prometheus.Histogram
	trackedPlayers prometheus.Gauge
	snapshotsSaved prometheus.Counter
	duplicates     *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "playerdata",
		subsystem:        "ingest",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)

	m.conversions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "conversions_total",
		Help:        "Conversions by wire format and outcome",
		ConstLabels: m.constLabels,
	}, []string{"format", "outcome"})

	m.conversionLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "conversion_duration_seconds",
		Help:        "Time spent decoding a payload",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"format"})

	m.skippedRecords = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "skipped_records_total",
		Help:        "Records dropped because their ordinal is not catalogued",
		ConstLabels: m.constLabels,
	}, []string{"format"})

	m.merges = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "feed_merges_total",
		Help:        "Feed merges by outcome (initial, overlap, gap)",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.prependedItems = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "feed_prepended_items",
		Help:        "Items prepended to a stored feed per merge",
		Buckets:     []float64{0, 1, 2, 5, 10, 20, 50},
		ConstLabels: m.constLabels,
	})

	m.trackedPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "tracked_players",
		Help:        "Players with a stored feed or snapshot",
		ConstLabels: m.constLabels,
	})

	m.snapshotsSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "snapshots_saved_total",
		Help:        "Highscore snapshots stored",
		ConstLabels: m.constLabels,
	})

	m.duplicates = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duplicate_payloads_total",
		Help:        "Highscore payloads already ingested for the player",
		ConstLabels: m.constLabels,
	}, []string{"format"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "HTTP requests by route, method and status code",
		ConstLabels: m.constLabels,
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "request_duration_seconds",
		Help:        "HTTP request latency by route, method and status code",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"route", "method", "status_code"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "memory_bytes",
		Help:        "Heap bytes in use",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "system",
		Name:        "goroutines",
		Help:        "Number of live goroutines",
		ConstLabels: m.constLabels,
	})
}

// RecordConversion counts one conversion and observes its latency.
func (m *Manager) RecordConversion(format, outcome string, d time.Duration) {
	m.conversions.WithLabelValues(format, outcome).Inc()
	m.conversionLatency.WithLabelValues(format).Observe(d.Seconds())
}

// RecordSkippedRecords adds n uncatalogued records for format.
func (m *Manager) RecordSkippedRecords(format string, n int) {
	if n > 0 {
		m.skippedRecords.WithLabelValues(format).Add(float64(n))
	}
}

// RecordMerge counts a feed merge and the number of items it prepended.
func (m *Manager) RecordMerge(outcome string, prepended int) {
	m.merges.WithLabelValues(outcome).Inc()
	m.prependedItems.Observe(float64(prepended))
}

// UpdateTrackedPlayers sets the tracked players gauge.
func (m *Manager) UpdateTrackedPlayers(n int) {
	m.trackedPlayers.Set(float64(n))
}

// RecordSnapshotSaved counts a stored highscore snapshot.
func (m *Manager) RecordSnapshotSaved() {
	m.snapshotsSaved.Inc()
}

// RecordDuplicate counts a repeated highscore payload.
func (m *Manager) RecordDuplicate(format string) {
	m.duplicates.WithLabelValues(format).Inc()
}

// RecordHTTPRequest counts a request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(d.Seconds())
}

// CollectSystem samples memory and goroutine gauges once.
func (m *Manager) CollectSystem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.systemMemoryUsage.Set(float64(ms.HeapAlloc))
	m.systemGoroutineCount.Set(float64(runtime.NumGoroutine()))
}

// RunSystemCollector samples system gauges every refresh interval until ctx
// is done.
func (m *Manager) RunSystemCollector(ctx context.Context) {
	ticker := time.NewTicker(m.refreshInterval)
	defer ticker.Stop()

	m.CollectSystem()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CollectSystem()
		}
	}
}

// Package-level helpers record on the global manager.

func RecordConversion(format, outcome string, d time.Duration) {
	globalManager.RecordConversion(format, outcome, d)
}

func RecordSkippedRecords(format string, n int) {
	globalManager.RecordSkippedRecords(format, n)
}

func RecordMerge(outcome string, prepended int) {
	globalManager.RecordMerge(outcome, prepended)
}

func UpdateTrackedPlayers(n int) {
	globalManager.UpdateTrackedPlayers(n)
}

func RecordSnapshotSaved() {
	globalManager.RecordSnapshotSaved()
}

func RecordDuplicate(format string) {
	globalManager.RecordDuplicate(format)
}

func RecordHTTPRequest(route, method, statusCode string, d time.Duration) {
	globalManager.RecordHTTPRequest(route, method, statusCode, d)
}

// StartSystemCollector runs the global manager's system collector in the
// background until ctx is done.
func StartSystemCollector(ctx context.Context) {
	go globalManager.RunSystemCollector(ctx)
}

// GetRegistry returns the registry the global manager records on.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
