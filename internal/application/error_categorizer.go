package application

import (
	"context"
	"errors"
	"net/http"
)

// ErrorCategory describes where a gateway fault came from
type ErrorCategory string

const (
	// CategoryTransport covers network failures, timeouts, 5xx answers and
	// bodies that could not be decoded.
	CategoryTransport ErrorCategory = "TRANSPORT"
	// CategoryStructured covers 4xx answers carrying the gateway's error body.
	CategoryStructured ErrorCategory = "STRUCTURED"
)

// CategorizeGatewayError determines whether a gateway fault is transport level
// or a structured rejection from the processor.
func CategorizeGatewayError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransport
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.StatusCode >= 400 && gwErr.StatusCode < 500 && gwErr.Code != "" {
			return CategoryStructured
		}
		return CategoryTransport
	}

	// Default: Transport (safe fallback)
	return CategoryTransport
}

// IsRetryable returns true for faults where repeating an idempotent call may help
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if gwErr, ok := IsGatewayError(err); ok && gwErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return CategorizeGatewayError(err) == CategoryTransport
}

// ToHTTPStatus maps a gateway fault to the status returned to the caller
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if CategorizeGatewayError(err) == CategoryStructured {
		return http.StatusBadRequest
	}

	// Default to 500
	return http.StatusInternalServerError
}

// SafeMessage returns the text of err that may be shown to a caller.
func SafeMessage(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Message
	}
	if gwErr, ok := IsGatewayError(err); ok && gwErr.Message != "" {
		return gwErr.Message
	}
	return "gateway request failed"
}
