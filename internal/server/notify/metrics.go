package notify

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	observers  prometheus.Gauge
	broadcasts prometheus.Counter
	delivered  prometheus.Counter
	pruned     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		observers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sos",
			Subsystem: "notify",
			Name:      "observers",
			Help:      "Number of registered observers.",
		}),
		broadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "notify",
			Name:      "broadcasts_total",
			Help:      "Number of fan-out rounds.",
		}),
		delivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "notify",
			Name:      "delivered_total",
			Help:      "Refreshes delivered to observers.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos",
			Subsystem: "notify",
			Name:      "pruned_total",
			Help:      "Observers dropped after a failed delivery.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.observers, m.broadcasts, m.delivered, m.pruned)
	}
	return m
}
