package bus

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStopDrainsSlowHandler(t *testing.T) {
	b := New()
	var count atomic.Int64
	b.Subscribe(func(ev Event) {
		count.Add(1)
		time.Sleep(50 * time.Millisecond)
	})
	b.Start()

	start := time.Now()
	for i := 0; i < 3; i++ {
		b.Publish(i)
	}
	b.Stop()
	elapsed := time.Since(start)

	if got := count.Load(); got != 3 {
		t.Fatalf("expected 3 deliveries before Stop returned, got %d", got)
	}
	if elapsed < 145*time.Millisecond {
		t.Fatalf("Stop returned after %v; should have blocked for the full drain", elapsed)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithLogger(zerolog.New(&buf)))
	var count atomic.Int64
	b.Subscribe(func(ev Event) {
		count.Add(1)
	})

	b.Start()
	b.Start()
	for i := 0; i < 10; i++ {
		b.Publish(i)
	}
	b.Stop()

	if got := count.Load(); got != 10 {
		t.Fatalf("expected 10 deliveries, got %d", got)
	}
	if b.State() != Stopped {
		t.Fatalf("expected stopped state after single Stop, got %v", b.State())
	}
	if !strings.Contains(buf.String(), "cannot start: already running") {
		t.Fatalf("expected redundant start to be logged, got: %s", buf.String())
	}
}

func TestStopWithoutStart(t *testing.T) {
	b := New()
	done := make(chan struct{})
	go func() {
		b.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop on a never-started bus hung")
	}
	if b.State() != Stopped {
		t.Fatalf("state = %v, want stopped", b.State())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	b := New()
	var count atomic.Int64
	b.Subscribe(func(ev Event) {
		count.Add(1)
	})
	b.Start()
	b.Publish("x")
	b.Stop()
	b.Stop()

	if got := count.Load(); got != 1 {
		t.Fatalf("expected 1 delivery, got %d", got)
	}
}

func TestRestartAfterStop(t *testing.T) {
	b := New()
	var count atomic.Int64
	b.Subscribe(func(ev Event) {
		count.Add(1)
	})

	b.Start()
	b.Publish("a")
	b.Stop()

	b.Start()
	if b.State() != Running {
		t.Fatalf("state = %v, want running", b.State())
	}
	b.Publish("b")
	b.Stop()

	if got := count.Load(); got != 2 {
		t.Fatalf("expected 2 deliveries across restarts, got %d", got)
	}
}

func TestConcurrentStartSpawnsOneWorker(t *testing.T) {
	b := New()
	var count atomic.Int64
	b.Subscribe(func(ev Event) {
		count.Add(1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Start()
		}()
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		b.Publish(i)
	}
	b.Stop()

	if got := count.Load(); got != 20 {
		t.Fatalf("expected 20 deliveries, got %d", got)
	}
	// A single Stop suffices: only one transition to Running ever happened.
	if b.State() != Stopped {
		t.Fatalf("state = %v, want stopped", b.State())
	}
}

func TestConcurrentStopIsSafe(t *testing.T) {
	b := New()
	b.Subscribe(func(ev Event) {})
	b.Start()
	b.Publish("x")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Stop()
		}()
	}
	wg.Wait()

	if b.State() != Stopped {
		t.Fatalf("state = %v, want stopped", b.State())
	}
}
