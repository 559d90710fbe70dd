// Package consumer provides the consuming side of the pipeline: handlers
// that subscribe once at construction and process delivered readings on the
// bus dispatch goroutine.
package consumer

import (
	"github.com/rs/zerolog"

	"sensord/internal/bus"
	"sensord/internal/sensor"
)

// Subscriber is the slice of the event bus a consumer needs.
type Subscriber interface {
	Subscribe(bus.Handler)
}

// Logger logs CO readings in full and fault readings from any sensor kind as
// warnings. Non-CO healthy readings are ignored.
type Logger struct {
	log zerolog.Logger
}

// NewLogger subscribes the consumer to b. The subscription lasts for the
// life of the bus; there is no unsubscribe.
func NewLogger(b Subscriber, log zerolog.Logger) *Logger {
	c := &Logger{log: log}
	b.Subscribe(c.onEvent)
	log.Info().Msg("log consumer subscribed")
	return c
}

func (c *Logger) onEvent(ev bus.Event) {
	r, ok := ev.(sensor.Reading)
	if !ok {
		return
	}
	if r.Kind == sensor.KindCO {
		c.log.Info().
			Str("device", r.DeviceID).
			Time("ts", r.Timestamp).
			Float64("value", r.Value).
			Msg("co reading")
	}
	if r.IsFault() {
		c.log.Warn().
			Str("device", r.DeviceID).
			Str("kind", r.Kind.String()).
			Time("ts", r.Timestamp).
			Msg("sensor failure")
	}
}
