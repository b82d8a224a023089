package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Mutations       *prometheus.CounterVec
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wilayah_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wilayah_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wilayah_entity_mutations_total",
			Help: "Successful create/update/delete operations by entity",
		}, []string{"entity", "operation"}),
	}
}

// ObserveRequest records one finished request. Call with time.Now() taken
// before the handler ran.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// RecordMutation counts a committed write, e.g. ("provinsi", "delete").
func (m *Metrics) RecordMutation(entity, operation string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(entity, operation).Inc()
}
