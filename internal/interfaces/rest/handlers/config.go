package handlers

import (
	"net/http"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/middleware"
)

// PermissionCreatePaymentMethod lets a token create a single payment method,
// which is all the browser-side hosted fields need.
const PermissionCreatePaymentMethod = "PMT_POST_Create_Single"

// GetConfig issues an access token for client-side card tokenization.
//
//	@Summary	Issue a tokenization access token
//	@Produce	json
//	@Success	200	{object}	rest.ConfigResponse
//	@Failure	500	{object}	rest.ConfigErrorResponse
//	@Router		/config [get]
func (h *Handlers) GetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.tokenIssuer == nil {
		rest.WriteError(w, application.NewInternalError(nil), h.logger)
		return
	}

	token, err := h.tokenIssuer.GenerateAccessToken(ctx, []string{PermissionCreatePaymentMethod})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token",
			"error", err,
			"request_id", middleware.RequestIDFromContext(ctx),
		)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.ConfigErrorResponse{
			Success: false,
			Message: rest.MsgTokenFailed,
			Error:   application.SafeMessage(err),
		}, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ConfigResponse{
		Success: true,
		Data:    rest.ConfigData{AccessToken: token.Token},
	}, h.logger)
}
