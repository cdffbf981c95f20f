package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Gateway metrics
	ItemsEnumerated prometheus.Counter
	BytesRead       prometheus.Counter
	AccessDenials   prometheus.Counter
	EntriesSkipped  prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot MetricsSnapshot

	mu sync.RWMutex
}

// MetricsSnapshot holds current metric values for JSON API
type MetricsSnapshot struct {
	TotalRequests int64
	TotalErrors   int64
	TotalDuration float64 // sum of all request durations
	RequestCount  int64   // count for averaging
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Tool metrics
		ToolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_tool_calls_total",
				Help: "Total number of tool calls",
			},
			[]string{"service", "tool", "status"},
		),
		ToolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_tool_duration_seconds",
				Help:    "Tool call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"service", "tool"},
		),
		ToolErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_tool_errors_total",
				Help: "Total number of tool errors",
			},
			[]string{"service", "tool", "code"},
		),

		// Gateway metrics
		ItemsEnumerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_items_enumerated_total",
				Help: "Total number of filesystem entries enumerated",
			},
		),
		BytesRead: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_bytes_read_total",
				Help: "Total number of file bytes served",
			},
		),
		AccessDenials: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_access_denials_total",
				Help: "Total number of denied path accesses",
			},
		),
		EntriesSkipped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "gateway_entries_skipped_total",
				Help: "Total number of entries skipped due to per-entry errors",
			},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "gateway_uptime_seconds",
				Help: "Gateway uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	// Update snapshot
	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	m.snapshot.RequestCount++
	if status[0] == '4' || status[0] == '5' {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordToolCall records a tool invocation
func (m *Metrics) RecordToolCall(service, tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(service, tool, status).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
}

// RecordToolError records a failed tool invocation
func (m *Metrics) RecordToolError(service, tool, code string) {
	m.ToolErrors.WithLabelValues(service, tool, code).Inc()
}

// AddItemsEnumerated adds to the enumerated entries counter
func (m *Metrics) AddItemsEnumerated(count int) {
	m.ItemsEnumerated.Add(float64(count))
}

// AddBytesRead adds to the bytes served counter
func (m *Metrics) AddBytesRead(n int) {
	m.BytesRead.Add(float64(n))
}

// IncAccessDenials increments the denied access counter
func (m *Metrics) IncAccessDenials() {
	m.AccessDenials.Inc()
}

// IncEntriesSkipped increments the skipped entries counter
func (m *Metrics) IncEntriesSkipped() {
	m.EntriesSkipped.Inc()
}

// Snapshot returns current aggregate values
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}
