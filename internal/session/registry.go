package session

import (
	"sync"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/metrics"
)

// State is the registry state.
type State int

const (
	StateEmpty State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	default:
		return "empty"
	}
}

// Registry is the single session slot.
type Registry struct {
	mu      sync.Mutex
	current *Handle
	logger  *logger.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{logger: log.WithComponent("session")}
}

// Set installs h, taking over the caller's reference. A previously
// installed handle is released after the lock is dropped.
func (r *Registry) Set(h *Handle) {
	r.mu.Lock()
	prev := r.current
	r.current = h
	metrics.SetSessionActive(true)
	r.mu.Unlock()

	r.logger.Info().Str("func", "Registry.Set").Msg("session installed")

	if prev != nil {
		r.release(prev)
	}
}

// Get returns a new reference to the active session. The caller must
// release it.
func (r *Registry) Get() (*Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, false
	}
	return r.current.Clone(), true
}

// Clear empties the registry and drops its reference.
func (r *Registry) Clear() {
	r.mu.Lock()
	prev := r.current
	r.current = nil
	metrics.SetSessionActive(false)
	r.mu.Unlock()

	if prev == nil {
		return
	}

	r.logger.Info().Str("func", "Registry.Clear").Msg("session cleared")
	r.release(prev)
}

// State reports whether a session is installed.
func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return StateEmpty
	}
	return StateActive
}

func (r *Registry) release(h *Handle) {
	if err := h.Release(); err != nil {
		r.logger.Err(err).Str("func", "Registry.release").Msg("error closing wallet engine")
	}
}
