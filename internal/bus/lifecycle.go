package bus

// State is the bus lifecycle state. Invariant: the dispatch goroutine exists
// iff the state is Running.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// State reports the current lifecycle state.
func (b *Bus) State() State { return State(b.state.Load()) }

// Start spawns the dispatch goroutine. Exactly one caller wins a concurrent
// Start race; calling Start on a running bus is a logged no-op, not an error.
// Events published before the first Start are retained and delivered once the
// dispatcher runs.
func (b *Bus) Start() {
	b.transitions.Lock()
	defer b.transitions.Unlock()

	if !b.state.CompareAndSwap(int32(Stopped), int32(Running)) {
		b.log.Info().Msg("cannot start: already running")
		return
	}

	b.mu.Lock()
	b.stopReq = false
	b.mu.Unlock()

	b.done = make(chan struct{})
	b.log.Info().Msg("bus started")
	go b.dispatchLoop(b.done)
}

// Stop signals the dispatcher to finish draining and blocks until it has
// delivered every queued event and exited. Calling Stop on a stopped bus,
// including one that was never started, is a logged no-op. After Stop returns
// the bus may be started again.
func (b *Bus) Stop() {
	b.transitions.Lock()
	defer b.transitions.Unlock()

	if State(b.state.Load()) != Running {
		b.log.Info().Msg("cannot stop: not running")
		return
	}

	b.mu.Lock()
	b.stopReq = true
	b.cond.Signal()
	b.mu.Unlock()

	<-b.done
	b.state.Store(int32(Stopped))
	b.log.Info().Msg("bus stopped")
}
