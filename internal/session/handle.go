package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-light-wallet/internal/engine"
)

// Handle is one reference to a shared engine. Every Handle obtained from
// [NewHandle] or [Handle.Clone] must be released exactly once.
type Handle struct {
	shared   *shared
	released atomic.Bool
}

type shared struct {
	engine engine.Engine
	refs   atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// NewHandle takes ownership of e and returns its first reference. The
// handle context stays alive until the last reference is released.
func NewHandle(e engine.Engine) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	s := &shared{
		engine: e,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.refs.Store(1)

	return &Handle{shared: s}
}

// Engine returns the shared engine.
func (h *Handle) Engine() engine.Engine {
	return h.shared.engine
}

// Context is cancelled when the engine is about to be closed. Background
// work bound to the session, like the engine monitor, runs on it.
func (h *Handle) Context() context.Context {
	return h.shared.ctx
}

// Done is closed after the engine has been closed.
func (h *Handle) Done() <-chan struct{} {
	return h.shared.done
}

// Same reports whether h and other refer to the same engine.
func (h *Handle) Same(other *Handle) bool {
	return other != nil && h.shared == other.shared
}

// Refs returns the number of live references.
func (h *Handle) Refs() int64 {
	return h.shared.refs.Load()
}

// Clone returns a new reference to the same engine.
func (h *Handle) Clone() *Handle {
	h.shared.refs.Add(1)
	return &Handle{shared: h.shared}
}

// Release drops this reference. Releasing the last one cancels the handle
// context and closes the engine; the returned error is the engine's Close
// error in that case. Releasing a handle twice is a no-op.
func (h *Handle) Release() error {
	if !h.released.CompareAndSwap(false, true) {
		return nil
	}
	if h.shared.refs.Add(-1) > 0 {
		return nil
	}
	return h.shared.close()
}

func (s *shared) close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.closeErr = s.engine.Close()
		close(s.done)
	})
	return s.closeErr
}
