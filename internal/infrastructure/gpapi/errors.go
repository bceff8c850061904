package gpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
)

// Messages shown to callers for transport faults. The underlying cause stays
// in GatewayError.Err.
const (
	msgUnreachable        = "payment processor unreachable"
	msgUnavailable        = "payment processor unavailable"
	msgUnexpectedResponse = "payment processor returned an unexpected response"
)

func transportError(statusCode int, message string, err error) *application.GatewayError {
	return &application.GatewayError{
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// decodeError turns a non-2xx answer into a GatewayError. Only 4xx answers
// with a readable error body keep the processor's description.
func decodeError(statusCode int, body []byte) *application.GatewayError {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.ErrorCode == "" {
		return transportError(statusCode, msgUnexpectedResponse,
			fmt.Errorf("gp api returned status %d: %s", statusCode, truncate(body, 512)))
	}

	if statusCode >= http.StatusInternalServerError {
		return &application.GatewayError{
			Code:       errResp.ErrorCode,
			Message:    msgUnavailable,
			StatusCode: statusCode,
			Err: fmt.Errorf("gp api returned status %d [%s/%s]: %s",
				statusCode, errResp.ErrorCode, errResp.DetailedErrorCode, errResp.DetailedErrorDescription),
		}
	}

	message := errResp.DetailedErrorDescription
	if message == "" {
		message = errResp.ErrorCode
	}
	return &application.GatewayError{
		Code:       errResp.ErrorCode,
		Message:    message,
		StatusCode: statusCode,
		Err:        fmt.Errorf("gp api detailed error code %s", errResp.DetailedErrorCode),
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
