// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, the syncstatus poller and a Workers
// aggregate that runs several workers until their context ends.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Dispatcher is the part of the command service the workers need.
type Dispatcher interface {
	Exec(ctx context.Context, command, args string) string
}
