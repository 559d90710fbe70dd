package main

import (
	"time"

	"sensord/internal/bus"
	"sensord/internal/sensor"
	"sensord/pkg/types"
)

// service adapts the bus and fleet to the HTTP API layer.
type service struct {
	bus     *bus.Bus
	fleet   *sensor.Fleet
	sims    []*sensor.Simulator
	started time.Time
}

func newService(b *bus.Bus, f *sensor.Fleet, sims []*sensor.Simulator) *service {
	return &service{bus: b, fleet: f, sims: sims, started: time.Now()}
}

func (s *service) Ready() bool {
	return s.bus.State() == bus.Running
}

func (s *service) Status() types.StatusResponse {
	st := s.bus.Stats()
	resp := types.StatusResponse{
		State:           st.State.String(),
		QueueDepth:      st.QueueDepth,
		Handlers:        st.Handlers,
		EventsPublished: st.Published,
		EventsDelivered: st.Delivered,
		UptimeSeconds:   int64(time.Since(s.started).Seconds()),
	}
	running := s.fleet.Running()
	for _, sim := range s.sims {
		resp.Simulators = append(resp.Simulators, types.SimulatorStatus{
			DeviceID:        sim.Device().ID(),
			Kind:            sim.Device().Kind().String(),
			IntervalSeconds: sim.Interval().Seconds(),
			Running:         running,
		})
	}
	return resp
}
