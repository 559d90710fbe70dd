package bus

import "github.com/prometheus/client_golang/prometheus"

var (
	busPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sensord",
			Subsystem: "bus",
			Name:      "published_total",
			Help:      "Total number of events accepted by Publish",
		},
	)

	busDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sensord",
			Subsystem: "bus",
			Name:      "delivered_total",
			Help:      "Total number of events fully dispatched to all handlers",
		},
	)

	busQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sensord",
			Subsystem: "bus",
			Name:      "queue_depth",
			Help:      "Events currently waiting for dispatch",
		},
	)

	busHandlers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sensord",
			Subsystem: "bus",
			Name:      "handlers",
			Help:      "Registered handlers",
		},
	)
)

func init() {
	prometheus.MustRegister(busPublished, busDelivered, busQueueDepth, busHandlers)
}
