package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-light-wallet/models"
)

// stubEngine is a hand-written engine for timing-sensitive tests: it
// records calls, sleeps for delay and returns result.
type stubEngine struct {
	result string
	delay  time.Duration

	calls    atomic.Int64
	closed   atomic.Int64
	monitors atomic.Int64

	mu       sync.Mutex
	lastName string
	lastArgs []string
	started  chan struct{}
	once     sync.Once
}

func newStubEngine(result string, delay time.Duration) *stubEngine {
	return &stubEngine{result: result, delay: delay, started: make(chan struct{})}
}

func (e *stubEngine) SeedPhrase(context.Context) (models.SeedPhrase, error) {
	return models.NewSeedPhrase([]byte{1, 2, 3, 4}, 900), nil
}

func (e *stubEngine) ExecuteCommand(_ context.Context, name string, args []string) string {
	e.calls.Add(1)
	e.mu.Lock()
	e.lastName = name
	e.lastArgs = args
	e.mu.Unlock()
	e.once.Do(func() { close(e.started) })

	time.Sleep(e.delay)
	return e.result
}

func (e *stubEngine) StartBackgroundMonitor(context.Context) {
	e.monitors.Add(1)
}

func (e *stubEngine) Close() error {
	e.closed.Add(1)
	return nil
}

func (e *stubEngine) last() (string, []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastName, e.lastArgs
}
