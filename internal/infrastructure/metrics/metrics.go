// Package metrics exposes Prometheus collectors for the request lifecycle and
// the HTTP layer.
package metrics

import (
	"net/http"

	"beneficios_inss/internal/domain/entities"
	"beneficios_inss/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "beneficios"

type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
}

var _ interfaces.ITransitionRecorder = (*Metrics)(nil)

// New builds the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_transitions_total",
			Help:      "Successful benefit request lifecycle writes by event and resulting status.",
		}, []string{"event", "status"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_rejections_total",
			Help:      "Lifecycle operations refused before any write, by event and reason.",
		}, []string{"event", "reason"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "code"}),
	}
	m.registry.MustRegister(
		m.transitions,
		m.rejections,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) RecordTransition(event string, to entities.RequestStatus) {
	m.transitions.WithLabelValues(event, string(to)).Inc()
}

func (m *Metrics) RecordRejection(event, reason string) {
	m.rejections.WithLabelValues(event, reason).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method, code string, seconds float64) {
	m.httpLatency.WithLabelValues(route, method, code).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
