package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/service"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
)

// Session modes accepted by POST /api/session.
const (
	sessionModeAuto     = "auto"
	sessionModeNew      = "new"
	sessionModeExisting = "existing"
)

type sessionRequest struct {
	Mode string `json:"mode"`
}

type sessionResponse struct {
	State  string `json:"state"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, sessionResponse{State: h.services.LifecycleService.State().String()}, http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "Handler.createSession").Msg("error decoding session request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	initialize, err := h.initializer(req.Mode)
	if err != nil {
		log.Err(err).Str("func", "Handler.createSession").Str("mode", req.Mode).Send()
		utils.WriteJSON(w, sessionResponse{
			State: h.services.LifecycleService.State().String(),
			Error: service.Outcome("", err),
		}, statusFromError(err))
		return
	}

	result, err := initialize(r.Context())
	resp := sessionResponse{
		State:  h.services.LifecycleService.State().String(),
		Result: result,
	}
	if err != nil {
		log.Err(err).Str("func", "Handler.createSession").Str("mode", req.Mode).Msg("error initializing session")
		resp.Error = service.Outcome(result, err)
		utils.WriteJSON(w, resp, statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) initializer(mode string) (func(ctx context.Context) (string, error), error) {
	lifecycle := h.services.LifecycleService
	switch mode {
	case "", sessionModeAuto:
		return lifecycle.Initialize, nil
	case sessionModeNew:
		return lifecycle.InitializeNew, nil
	case sessionModeExisting:
		return lifecycle.InitializeExisting, nil
	default:
		return nil, ErrUnknownSessionMode
	}
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.services.LifecycleService.Deinitialize()
	utils.WriteJSON(w, sessionResponse{
		State:  h.services.LifecycleService.State().String(),
		Result: app.MsgOK,
	}, http.StatusOK)
}
