package handlers

import (
	"net/http"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest/middleware"
)

// ProcessPayment authorizes and captures a tokenized card payment.
//
//	@Summary	Authorize and capture a payment
//	@Accept		x-www-form-urlencoded,mpfd,json
//	@Produce	json
//	@Param		payment_token	formData	string	true	"Card token from the hosted fields"
//	@Param		billing_zip		formData	string	true	"Billing postal code"
//	@Param		amount			formData	string	true	"Amount in EUR"
//	@Success	200				{array}		rest.SuccessEntry
//	@Failure	400				{object}	rest.ErrorResponse
//	@Failure	500				{object}	rest.ErrorResponse
//	@Router		/process-payment [post]
func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", middleware.RequestIDFromContext(ctx))

	req, err := decodePaymentRequest(w, r)
	if err != nil {
		logger.InfoContext(ctx, "could not decode payment request", "error", err)
	}

	result, err := h.paymentService.ProcessPayment(ctx, services.ProcessPaymentCommand{
		PaymentToken: string(req.PaymentToken),
		BillingZip:   string(req.BillingZip),
		Amount:       string(req.Amount),
	})
	if err != nil {
		logger.ErrorContext(ctx, "payment processing failed", "error", err)
		rest.WriteError(w, err, logger)
		return
	}

	status, body := rest.MapPaymentResult(result)
	rest.WriteJSON(w, status, body, logger)
}
