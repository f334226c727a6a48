package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"medialib-backend/application/ports"
)

// ResetHandler restores the store to its fixture state. It is only mounted
// in development environments.
type ResetHandler struct {
	resetter ports.StoreResetter
	logger   *zap.Logger
}

func NewResetHandler(resetter ports.StoreResetter, logger *zap.Logger) *ResetHandler {
	return &ResetHandler{resetter: resetter, logger: logger}
}

func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.resetter.Reset(r.Context()); err != nil {
		h.logger.Error("store reset failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}
	h.logger.Info("store reset to fixtures")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
