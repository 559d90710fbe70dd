package sensor

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner is the lifecycle contract a fleet member must satisfy. Run blocks
// until Stop is called; Stop returns immediately.
type Runner interface {
	Run()
	Stop()
}

type fleetState int

const (
	fleetStopped fleetState = iota
	fleetRunning
)

// Fleet owns a group of simulators and runs each on its own goroutine.
// StartAll/StopAll are idempotent; StopAll joins every run loop before
// returning.
type Fleet struct {
	mu    sync.Mutex
	sims  []Runner
	group *errgroup.Group
	state fleetState
	log   zerolog.Logger
}

func NewFleet(log zerolog.Logger) *Fleet {
	return &Fleet{log: log}
}

// Add registers a simulator with the fleet. Call before StartAll.
func (f *Fleet) Add(r Runner) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sims = append(f.sims, r)
}

// Running reports whether the fleet has been started and not yet stopped.
func (f *Fleet) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == fleetRunning
}

// StartAll spawns one goroutine per registered simulator. Calling StartAll on
// a running fleet is a logged no-op.
func (f *Fleet) StartAll() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == fleetRunning {
		f.log.Info().Msg("cannot start fleet: already running")
		return
	}
	f.state = fleetRunning

	f.group = new(errgroup.Group)
	for _, sim := range f.sims {
		sim := sim
		f.group.Go(func() error {
			sim.Run()
			return nil
		})
	}
	f.log.Info().Int("simulators", len(f.sims)).Msg("fleet started")
}

// StopAll signals every simulator to stop and waits for all run loops to
// return. Calling StopAll on a stopped fleet is a no-op.
func (f *Fleet) StopAll() {
	f.mu.Lock()
	if f.state == fleetStopped {
		f.mu.Unlock()
		return
	}
	f.state = fleetStopped
	sims := f.sims
	group := f.group
	f.mu.Unlock()

	for _, sim := range sims {
		sim.Stop()
	}
	_ = group.Wait()
	f.log.Info().Msg("fleet stopped")
}
