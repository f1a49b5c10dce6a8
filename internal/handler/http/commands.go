package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-light-wallet/internal/app"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
)

// maxArgsSize bounds the raw argument body.
const maxArgsSize = 64 << 10

// dispatchCommand forwards the path command and the raw body, as the single
// argument string, to the command service. The dispatch outcome is written
// back verbatim with 200: "OK", the engine result or an "Error: ..." line.
func (h *Handler) dispatchCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	command := chi.URLParam(r, "command")
	if command == "" {
		http.Error(w, app.MsgEmptyCommand, http.StatusBadRequest)
		return
	}

	args, err := io.ReadAll(io.LimitReader(r.Body, maxArgsSize))
	if err != nil {
		log.Err(err).Str("func", "Handler.dispatchCommand").Msg("error reading command arguments")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	outcome := h.services.CommandService.Exec(r.Context(), command, string(args))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, outcome)
}
