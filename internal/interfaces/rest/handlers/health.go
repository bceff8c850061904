package handlers

import (
	"net/http"

	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest"
)

// Health
//
//	@Summary	Liveness probe
//	@Produce	json
//	@Success	200	{object}	rest.HealthResponse
//	@Router		/health [get]
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	rest.WriteJSON(w, http.StatusOK, rest.HealthResponse{Status: "ok"}, h.logger)
}
