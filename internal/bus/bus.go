package bus

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Event is an opaque payload handed to the bus for delivery. The bus never
// inspects it. Ownership passes to the bus at Publish and to the dispatch
// goroutine at dequeue; callers must not mutate a published event.
type Event any

// Handler receives one delivered event. Handlers run on the bus dispatch
// goroutine and may call Subscribe or Publish on the same bus without
// deadlocking.
type Handler func(Event)

// Bus is the publish/subscribe façade combining the pending queue, the
// handler registry, and the dispatcher. The zero value is not usable; call New.
type Bus struct {
	// mu guards queue, handlers, and stopReq. It is never held while a
	// handler runs.
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Event
	handlers []Handler
	stopReq  bool

	// transitions serializes Start/Stop so a Start during a stop drain
	// cannot spawn a second worker. state is the two-state machine.
	transitions sync.Mutex
	state       atomic.Int32
	done        chan struct{}

	published atomic.Uint64
	delivered atomic.Uint64

	log zerolog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger installs a structured logger. Logging is off by default.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Bus) { b.log = l }
}

// New constructs a stopped Bus.
func New(opts ...Option) *Bus {
	b := &Bus{log: zerolog.New(io.Discard)}
	b.cond = sync.NewCond(&b.mu)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends h to the handler registry. It never fails and may be
// called from any goroutine in any lifecycle state, including from a handler
// mid-dispatch; the new handler applies only to events dequeued after the
// registration is observed.
//
// There is no unsubscribe: the registry only grows for the life of the bus.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	n := len(b.handlers)
	b.mu.Unlock()

	busHandlers.Set(float64(n))
	b.log.Debug().Int("handlers", n).Msg("handler subscribed")
}

// Publish enqueues ev for eventual delivery and wakes the dispatcher. It
// never blocks and never fails; delivery order matches the order in which
// concurrent Publish calls win the queue lock.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	b.queue = append(b.queue, ev)
	depth := len(b.queue)
	b.cond.Signal()
	b.mu.Unlock()

	b.published.Add(1)
	busPublished.Inc()
	busQueueDepth.Set(float64(depth))
}

// Stats is a point-in-time snapshot of bus counters for status reporting.
type Stats struct {
	State      State
	QueueDepth int
	Handlers   int
	Published  uint64
	Delivered  uint64
}

// Stats returns a consistent snapshot of queue depth and handler count, plus
// the delivery counters.
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	depth := len(b.queue)
	handlers := len(b.handlers)
	b.mu.Unlock()

	return Stats{
		State:      b.State(),
		QueueDepth: depth,
		Handlers:   handlers,
		Published:  b.published.Load(),
		Delivered:  b.delivered.Load(),
	}
}
