package http

import (
	"net/http"

	"github.com/MKhiriev/go-light-wallet/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
