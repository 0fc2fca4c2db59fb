package pathway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// dispatchMetrics holds the Prometheus collectors updated on every
// dispatch. Collectors are created per router and registered explicitly
// via Router.MustRegisterMetrics, so multiple routers in one process (or
// test) never fight over a global registry.
type dispatchMetrics struct {
	matched          *prometheus.CounterVec
	notFound         *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
}

func newDispatchMetrics() *dispatchMetrics {
	return &dispatchMetrics{
		matched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pathway",
				Subsystem: "router",
				Name:      "matched_total",
				Help:      "Total number of dispatches resolved by a registered route",
			},
			[]string{"method"},
		),
		notFound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pathway",
				Subsystem: "router",
				Name:      "not_found_total",
				Help:      "Total number of dispatches resolved by the not-found path",
			},
			[]string{"method"},
		),
		dispatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "pathway",
				Subsystem: "router",
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of dispatches including handler execution",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
		),
	}
}

// collectors returns all dispatch collectors for registration.
func (m *dispatchMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.matched, m.notFound, m.dispatchDuration}
}

// observe records one dispatch outcome.
func (m *dispatchMetrics) observe(method string, matched bool, start time.Time) {
	if matched {
		m.matched.WithLabelValues(method).Inc()
	} else {
		m.notFound.WithLabelValues(method).Inc()
	}
	m.dispatchDuration.Observe(time.Since(start).Seconds())
}
