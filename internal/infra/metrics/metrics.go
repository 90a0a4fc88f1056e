// Package metrics exposes Prometheus collectors for the HTTP API, the care
// profile resolver and the plant catalog lookup cache.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "care_for_plants"

// Metrics holds the application's collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	resolutionsTotal    *prometheus.CounterVec
	lookupCacheTotal    *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Time taken for HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "care_profile_resolutions_total",
				Help:      "Care profile resolutions by outcome",
			},
			[]string{"outcome"}, // stored, derived, not_found, lookup_failure
		),
		lookupCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_cache_lookups_total",
				Help:      "Plant catalog cache lookups by result",
			},
			[]string{"result"}, // hit, miss
		),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.resolutionsTotal,
		m.lookupCacheTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// RecordHTTPRequest counts a finished request. path is the route template,
// not the raw URL, to keep label cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordResolution counts one care profile resolution outcome.
func (m *Metrics) RecordResolution(outcome string) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheLookup counts one plant catalog cache lookup.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookupCacheTotal.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
