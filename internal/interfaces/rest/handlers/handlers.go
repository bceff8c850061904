package handlers

import (
	"log/slog"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
	"github.com/go-chi/chi/v5"
)

// Handlers serves the gateway's HTTP endpoints.
type Handlers struct {
	paymentService *services.PaymentService
	tokenIssuer    application.AccessTokenIssuer
	logger         *slog.Logger
}

func NewHandlers(
	paymentService *services.PaymentService,
	tokenIssuer application.AccessTokenIssuer,
	logger *slog.Logger,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		paymentService: paymentService,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/process-payment", h.ProcessPayment)
	r.Get("/config", h.GetConfig)
	r.Get("/health", h.Health)
}
