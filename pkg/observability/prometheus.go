package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ontodot"

// PrometheusHooks records pipeline, cache and HTTP events as Prometheus
// metrics. One value implements all three hook interfaces.
type PrometheusHooks struct {
	transforms        *prometheus.CounterVec // by status
	transformDuration prometheus.Histogram
	edges             prometheus.Histogram     // edges per diagram
	renders           *prometheus.CounterVec   // by format and status
	renderDuration    *prometheus.HistogramVec // by format

	cacheLookups *prometheus.CounterVec // by key type and result (hit/miss)
	cacheBytes   *prometheus.CounterVec // by key type

	requests        *prometheus.CounterVec   // by method, route and code
	requestDuration *prometheus.HistogramVec // by method and route
	inFlight        prometheus.Gauge
}

// NewPrometheusHooks creates the metrics and registers them with reg.
// It panics if a metric is already registered, like prometheus.MustRegister.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "transforms_total",
			Help:      "Total number of ontology transformations",
		}, []string{"status"}), // status: ok, error

		transformDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "transform_duration_seconds",
			Help:      "Transformation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),

		edges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "diagram_edges",
			Help:      "Number of edges per assembled diagram",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),

		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "renders_total",
			Help:      "Total number of Graphviz renders",
		}, []string{"format", "status"}),

		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"format"}),

		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of cache lookups",
		}, []string{"key_type", "result"}), // result: hit, miss

		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Total bytes written to the cache",
		}, []string{"key_type"}),

		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "route", "code"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Requests currently being served",
		}),
	}

	reg.MustRegister(
		h.transforms, h.transformDuration, h.edges,
		h.renders, h.renderDuration,
		h.cacheLookups, h.cacheBytes,
		h.requests, h.requestDuration, h.inFlight,
	)
	return h
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// OnTransformStart implements [PipelineHooks].
func (h *PrometheusHooks) OnTransformStart(context.Context, string) {}

// OnTransformComplete implements [PipelineHooks].
func (h *PrometheusHooks) OnTransformComplete(_ context.Context, _ string, edgeCount int, d time.Duration, err error) {
	h.transforms.WithLabelValues(status(err)).Inc()
	h.transformDuration.Observe(d.Seconds())
	if err == nil {
		h.edges.Observe(float64(edgeCount))
	}
}

// OnRenderStart implements [PipelineHooks].
func (h *PrometheusHooks) OnRenderStart(context.Context, string) {}

// OnRenderComplete implements [PipelineHooks].
func (h *PrometheusHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	h.renders.WithLabelValues(format, status(err)).Inc()
	h.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

// OnCacheHit implements [CacheHooks].
func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheLookups.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements [CacheHooks].
func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheLookups.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements [CacheHooks].
func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// OnRequest implements [HTTPHooks].
func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.inFlight.Inc()
}

// OnResponse implements [HTTPHooks].
func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	h.inFlight.Dec()
	h.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
	_ HTTPHooks     = (*PrometheusHooks)(nil)
)
