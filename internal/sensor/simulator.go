package sensor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"sensord/internal/bus"
)

// Default publish intervals per sensor kind.
const (
	DefaultCOInterval          = 10 * time.Second
	DefaultTemperatureInterval = 5 * time.Second
	DefaultPressureInterval    = time.Second
)

// Publisher is the slice of the event bus a simulator needs.
type Publisher interface {
	Publish(bus.Event)
}

// Simulator periodically publishes readings from one device until stopped.
type Simulator struct {
	dev      *Device
	interval time.Duration
	bus      Publisher
	log      zerolog.Logger

	stopc chan struct{}
	once  sync.Once
}

// NewSimulator wires a device to a publisher at the given interval.
func NewSimulator(dev *Device, interval time.Duration, p Publisher, log zerolog.Logger) *Simulator {
	return &Simulator{
		dev:      dev,
		interval: interval,
		bus:      p,
		log:      log,
		stopc:    make(chan struct{}),
	}
}

// Device returns the simulated device.
func (s *Simulator) Device() *Device { return s.dev }

// Interval returns the publish interval.
func (s *Simulator) Interval() time.Duration { return s.interval }

// Run publishes one reading per interval. It blocks until Stop is called and
// returns within one interval of the stop signal. A stopped simulator cannot
// be restarted.
func (s *Simulator) Run() {
	s.log.Info().
		Str("device", s.dev.ID()).
		Dur("interval", s.interval).
		Msg("simulator running")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.bus.Publish(s.dev.Next())
		select {
		case <-s.stopc:
			s.log.Info().Str("device", s.dev.ID()).Msg("simulator stopped")
			return
		case <-ticker.C:
		}
	}
}

// Stop signals Run to exit. It returns immediately and is safe to call from
// any goroutine, any number of times.
func (s *Simulator) Stop() {
	s.once.Do(func() { close(s.stopc) })
}
