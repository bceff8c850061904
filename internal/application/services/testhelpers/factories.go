package testhelpers

import (
	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/application/services"
	"github.com/google/uuid"
)

// Test card token issued by the GP sandbox tokenizer.
const TestPaymentToken = "PMT_" + "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"

// DefaultProcessPaymentCommand returns a valid payment command for testing
func DefaultProcessPaymentCommand() services.ProcessPaymentCommand {
	return services.ProcessPaymentCommand{
		PaymentToken: TestPaymentToken,
		BillingZip:   "D02AF30",
		Amount:       "10.00",
	}
}

// AuthorizedOutcome returns an approved authorization with the given transaction id.
func AuthorizedOutcome(transactionID string) *application.TransactionOutcome {
	return &application.TransactionOutcome{
		ResponseCode:    application.ResponseCodeSuccess,
		ResponseMessage: "PREAUTHORIZED",
		TransactionID:   transactionID,
	}
}

// CapturedOutcome returns an approved capture with the given transaction id.
func CapturedOutcome(transactionID string) *application.TransactionOutcome {
	return &application.TransactionOutcome{
		ResponseCode:    application.ResponseCodeSuccess,
		ResponseMessage: "CAPTURED",
		TransactionID:   transactionID,
	}
}

// DeclinedOutcome returns a declined gateway outcome with a fresh transaction id.
func DeclinedOutcome(message string) *application.TransactionOutcome {
	return &application.TransactionOutcome{
		ResponseCode:    "DECLINED",
		ResponseMessage: message,
		TransactionID:   "TRN_" + uuid.New().String(),
	}
}
