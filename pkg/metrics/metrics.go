// Package metrics собирает метрики HTTP-запросов в Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP хранит метрики HTTP-сервера в собственном реестре.
type HTTP struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	notes    *prometheus.CounterVec
}

// NewHTTP регистрирует метрики с префиксом namespace.
func NewHTTP(namespace string) *HTTP {
	m := &HTTP{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		notes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "note_operations_total",
			Help:      "Completed note operations by kind",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.notes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest учитывает завершённый запрос.
func (m *HTTP) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// NoteOperation учитывает успешную операцию над заметкой.
func (m *HTTP) NoteOperation(op string) {
	m.notes.WithLabelValues(op).Inc()
}

// Handler отдаёт метрики в формате Prometheus.
func (m *HTTP) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр метрик.
func (m *HTTP) Registry() *prometheus.Registry {
	return m.registry
}
