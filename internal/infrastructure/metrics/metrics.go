// Package metrics owns the Prometheus registry exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"aerocode/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	auditRecords    *prometheus.CounterVec
}

// New registers the service collectors on a private registry so tests can
// build as many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aerocode",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		auditRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aerocode",
			Subsystem: "audit",
			Name:      "records_total",
			Help:      "Audit records appended, by action.",
		}, []string{"action", "denied"}),
	}
	reg.MustRegister(
		m.requestDuration,
		m.auditRecords,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// ObserveAudit is meant to be hooked into the audit usecase.
func (m *Metrics) ObserveAudit(r entities.AuditRecord) {
	m.auditRecords.WithLabelValues(string(r.Action), strconv.FormatBool(r.Action.IsDenial())).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
