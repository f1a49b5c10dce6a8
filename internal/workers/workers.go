package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
