package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Sync metrics
	SyncRunsTotal       *prometheus.CounterVec
	SyncRecordsTotal    *prometheus.CounterVec
	SyncUpstreamLatency prometheus.Histogram
	SyncLastRunEpoch    prometheus.Gauge

	// Business metrics
	ExportsCreated prometheus.Counter
	LoginAttempts  *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Sync metrics
		SyncRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calllog_sync_runs_total",
				Help: "Total number of call log sync runs",
			},
			[]string{"trigger", "status"}, // manual/scheduled, completed/failed/busy
		),
		SyncRecordsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calllog_sync_records_total",
				Help: "Total number of call log records processed, by outcome",
			},
			[]string{"outcome"}, // inserted, updated, skipped
		),
		SyncUpstreamLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "calllog_upstream_fetch_duration_seconds",
			Help:    "Latency of upstream call log page fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SyncLastRunEpoch: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "calllog_sync_last_run_timestamp_seconds",
			Help: "Unix timestamp of the most recent sync run",
		}),

		// Business metrics
		ExportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of exports created",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path

			// Measure request size
			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordSyncRun increments the sync run counter and refreshes the last run gauge
func (m *Metrics) RecordSyncRun(trigger, status string) {
	m.SyncRunsTotal.WithLabelValues(trigger, status).Inc()
	m.SyncLastRunEpoch.Set(float64(time.Now().Unix()))
}

// RecordSyncOutcome records processed record counts by outcome
func (m *Metrics) RecordSyncOutcome(inserted, updated, skipped int) {
	m.SyncRecordsTotal.WithLabelValues("inserted").Add(float64(inserted))
	m.SyncRecordsTotal.WithLabelValues("updated").Add(float64(updated))
	m.SyncRecordsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordUpstreamFetch records the duration of one upstream page fetch
func (m *Metrics) RecordUpstreamFetch(duration time.Duration) {
	m.SyncUpstreamLatency.Observe(duration.Seconds())
}

// RecordExportCreated increments exports created counter
func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
