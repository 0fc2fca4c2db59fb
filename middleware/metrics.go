package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-pathway/pathway"
)

// ServiceMetrics holds the Prometheus collectors for the Metrics
// middleware. Collectors are registered with the provided registerer so
// tests and multi-service processes can use isolated registries.
type ServiceMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// NewServiceMetrics creates and registers service-level metrics.
func NewServiceMetrics(reg prometheus.Registerer) *ServiceMetrics {
	m := &ServiceMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pathway",
				Subsystem: "service",
				Name:      "requests_total",
				Help:      "Total number of service calls by method and status",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pathway",
				Subsystem: "service",
				Name:      "request_duration_seconds",
				Help:      "Duration of service calls",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pathway",
				Subsystem: "service",
				Name:      "requests_in_flight",
				Help:      "Number of service calls currently in flight",
			},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.requestsInFlight)
	return m
}

// statusError is the status label used for calls that returned an error
// instead of a response.
const statusError = "error"

// Metrics returns a middleware recording call counts, durations and
// in-flight gauge into m.
func Metrics(m *ServiceMetrics) pathway.Middleware {
	return func(next pathway.Service) pathway.Service {
		return wrap(next, func(ctx context.Context, req *pathway.Request) (*pathway.Response, error) {
			m.requestsInFlight.Inc()
			start := time.Now()

			resp, err := next.Call(ctx, req)

			m.requestsInFlight.Dec()
			m.requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

			status := statusError
			if err == nil {
				status = strconv.Itoa(resp.Status)
			}
			m.requestsTotal.WithLabelValues(req.Method, status).Inc()

			return resp, err
		})
	}
}
