package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application. Every
// collector owns its registry, so tests can create as many as they like.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics (graph service)
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Item graph metrics (graph service)
	Commands *prometheus.CounterVec

	// Editor metrics
	Intents           *prometheus.CounterVec
	SnapshotRefreshes *prometheus.CounterVec

	// Graph client metrics
	RemoteCalls    *prometheus.CounterVec
	RemoteDuration *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "item_commands_total",
				Help:      "Item graph commands by type and result",
			},
			[]string{"command", "result"},
		),
		Intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edit_intents_total",
				Help:      "Edit intents by kind and outcome",
			},
			[]string{"intent", "outcome"},
		),
		SnapshotRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_refreshes_total",
				Help:      "Snapshot fetches by result",
			},
			[]string{"result"},
		),
		RemoteCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_calls_total",
				Help:      "Calls to the graph service by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		RemoteDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_call_duration_seconds",
				Help:      "Graph service call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Commands,
		c.Intents,
		c.SnapshotRefreshes,
		c.RemoteCalls,
		c.RemoteDuration,
	)

	return c
}

// RecordHTTPRequest records one served request
func (c *Collector) RecordHTTPRequest(method, route, status string, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordCommand records one item graph command
func (c *Collector) RecordCommand(command, result string) {
	c.Commands.WithLabelValues(command, result).Inc()
}

// RecordIntent records how an edit intent settled
func (c *Collector) RecordIntent(intent, outcome string) {
	c.Intents.WithLabelValues(intent, outcome).Inc()
}

// RecordRefresh records one snapshot fetch
func (c *Collector) RecordRefresh(result string) {
	c.SnapshotRefreshes.WithLabelValues(result).Inc()
}

// RecordRemoteCall records one graph service call
func (c *Collector) RecordRemoteCall(endpoint, result string, d time.Duration) {
	c.RemoteCalls.WithLabelValues(endpoint, result).Inc()
	c.RemoteDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Registry returns the Prometheus registry for this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
