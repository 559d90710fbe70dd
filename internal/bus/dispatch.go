package bus

// dispatchLoop drains the pending queue on the single worker goroutine.
// For each event it pops the head, snapshots the handler registry, releases
// the lock, then invokes every snapshotted handler in subscription order.
// It exits once a stop has been requested and the queue is empty.
func (b *Bus) dispatchLoop(done chan struct{}) {
	defer close(done)

	for {
		b.mu.Lock()
		for len(b.queue) == 0 && !b.stopReq {
			b.cond.Wait()
		}
		if b.stopReq && len(b.queue) == 0 {
			b.mu.Unlock()
			return
		}

		ev := b.queue[0]
		b.queue[0] = nil
		b.queue = b.queue[1:]
		if len(b.queue) == 0 {
			b.queue = nil
		}
		depth := len(b.queue)
		snapshot := make([]Handler, len(b.handlers))
		copy(snapshot, b.handlers)
		b.mu.Unlock()

		busQueueDepth.Set(float64(depth))

		// Handlers run outside the lock so they can call back into the bus.
		for _, h := range snapshot {
			h(ev)
		}

		b.delivered.Add(1)
		busDelivered.Inc()
	}
}
