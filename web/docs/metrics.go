package docs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "route_docs"

type metrics struct {
	requests  *prometheus.CounterVec
	endpoints prometheus.Gauge
}

// newMetrics creates the documentation metrics. A nil registerer leaves them
// unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "docs",
			Name:      "requests_total",
			Help:      "Documentation requests by view and status code.",
		}, []string{"view", "code"}),

		endpoints: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "docs",
			Name:      "endpoints",
			Help:      "Endpoints documented by the most recent listing.",
		}),
	}
}
