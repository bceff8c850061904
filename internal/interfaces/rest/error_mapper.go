package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
)

// MapPaymentResult turns an orchestrator result into the HTTP status and body
// returned to the caller.
func MapPaymentResult(result *services.PaymentResult) (int, any) {
	if result.Succeeded() {
		entries := make([]SuccessEntry, 0, len(result.Entries))
		for _, e := range result.Entries {
			entries = append(entries, SuccessEntry{
				Success: true,
				Message: e.Message,
				Data:    TransactionData{TransactionID: e.TransactionID},
			})
		}
		return http.StatusOK, entries
	}

	f := result.Failure
	if f == nil {
		return internalErrorResponse()
	}

	body := ErrorResponse{
		Success: false,
		Message: MsgProcessingFailed,
		Error: ErrorDetail{
			Code:    f.Kind,
			Details: f.Details,
		},
	}

	switch f.Kind {
	case application.ErrCodeValidation:
		return http.StatusBadRequest, body

	case application.ErrCodePaymentDeclined:
		if f.Phase == services.PhaseCapture {
			body.Message = MsgCaptureFailed
		} else {
			body.Message = MsgAuthorizationFailed
		}
		return http.StatusBadRequest, body

	case application.ErrCodeAPI:
		return application.ToHTTPStatus(f.Err), body

	default:
		return internalErrorResponse()
	}
}

func internalErrorResponse() (int, any) {
	return http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: MsgProcessingFailed,
		Error: ErrorDetail{
			Code:    application.ErrCodeInternal,
			Details: application.NewInternalError(nil).Message,
		},
	}
}

// WriteError writes the envelope for an error that escaped the orchestrator.
// Only ServiceError messages are shown; anything else is reported as an
// internal error.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, body := internalErrorResponse()

	if svcErr, ok := application.IsServiceError(err); ok {
		statusCode = svcErr.HTTPStatus
		body = ErrorResponse{
			Success: false,
			Message: MsgProcessingFailed,
			Error: ErrorDetail{
				Code:    svcErr.Code,
				Details: svcErr.Message,
			},
		}
	}

	WriteJSON(w, statusCode, body, logger)
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil && logger != nil {
		logger.Error("failed to write response", "error", err)
	}
}
