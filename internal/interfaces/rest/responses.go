package rest

// Response bodies of the public HTTP surface. Field names and messages are
// part of the contract with the checkout page and must not change.

const (
	MsgProcessingFailed    = "Payment processing failed"
	MsgAuthorizationFailed = "Payment authorization failed"
	MsgCaptureFailed       = "Payment capture failed"
	MsgTokenFailed         = "Failed to generate access token"
)

type TransactionData struct {
	TransactionID string `json:"transactionId"`
}

// SuccessEntry is one element of the two-element success array.
type SuccessEntry struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type ConfigData struct {
	AccessToken string `json:"accessToken"`
}

type ConfigResponse struct {
	Success bool       `json:"success"`
	Data    ConfigData `json:"data"`
}

type ConfigErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
