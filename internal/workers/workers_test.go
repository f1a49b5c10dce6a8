// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called and blocks until ctx ends.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ws := NewWorkers(w1, w2, w3)
	ws.Run(ctx)

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_ReturnsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(&mockWorker{}, &mockWorker{})

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ws.Run(ctx)
	ws.Run(ctx)
	ws.Run(ctx)

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", got)
	}
}
