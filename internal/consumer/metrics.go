package consumer

import (
	"github.com/prometheus/client_golang/prometheus"

	"sensord/internal/bus"
	"sensord/internal/sensor"
)

var (
	sensorValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "sensord",
			Subsystem: "sensor",
			Name:      "value",
			Help:      "Last healthy reading per device, in kind-specific units",
		},
		[]string{"kind", "device"},
	)

	sensorReadings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sensord",
			Subsystem: "sensor",
			Name:      "readings_total",
			Help:      "Total readings delivered, by sensor kind",
		},
		[]string{"kind"},
	)

	sensorFaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sensord",
			Subsystem: "sensor",
			Name:      "faults_total",
			Help:      "Total fault readings delivered, by sensor kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(sensorValue, sensorReadings, sensorFaults)
}

// Metrics exports every delivered reading to Prometheus.
type Metrics struct{}

// NewMetrics subscribes the metrics consumer to b.
func NewMetrics(b Subscriber) *Metrics {
	m := &Metrics{}
	b.Subscribe(m.onEvent)
	return m
}

func (m *Metrics) onEvent(ev bus.Event) {
	r, ok := ev.(sensor.Reading)
	if !ok {
		return
	}
	kind := r.Kind.String()
	sensorReadings.WithLabelValues(kind).Inc()
	if r.IsFault() {
		sensorFaults.WithLabelValues(kind).Inc()
		return
	}
	sensorValue.WithLabelValues(kind, r.DeviceID).Set(r.Value)
}
