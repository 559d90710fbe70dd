// Package bus provides the asynchronous in-process event pipeline that
// decouples sensor producers from consumers. It is structured into small
// files by concern:
//
//   - bus.go: core Bus type, constructor, Subscribe/Publish, Stats.
//   - lifecycle.go: State machine and the Start/Stop transitions.
//   - dispatch.go: the single-goroutine dispatch loop.
//   - metrics.go: Prometheus collectors for the bus.
//
// One dedicated goroutine per Bus performs all handler invocation. Any
// number of goroutines may Publish and Subscribe concurrently. Events are
// delivered in FIFO enqueue order, each to every handler registered at the
// time the event is dequeued, in subscription order. Stop drains the queue
// before returning; it never aborts in-flight work.
//
// Handlers run unguarded: a panicking handler terminates the dispatch
// goroutine and silently halts delivery. Keep handlers cheap and non-failing;
// a slow handler stalls the whole pipeline.
package bus
