package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-light-wallet/internal/engine"
	"github.com/MKhiriev/go-light-wallet/internal/service"
)

// errorStatusMap is checked in order; the first match wins, so the more
// specific engine errors come before the lifecycle wrappers.
var errorStatusMap = []struct {
	target error
	status int
}{
	{engine.ErrNoWallet, http.StatusNotFound},
	{engine.ErrWalletExists, http.StatusConflict},
	{engine.ErrChainMismatch, http.StatusConflict},
	{ErrUnknownSessionMode, http.StatusBadRequest},
	{service.ErrAlreadyInitialized, http.StatusConflict},
	{service.ErrNetwork, http.StatusBadGateway},
	{service.ErrRestore, http.StatusUnprocessableEntity},
	{service.ErrEngineInit, http.StatusInternalServerError},
	{service.ErrSeedPhrase, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
