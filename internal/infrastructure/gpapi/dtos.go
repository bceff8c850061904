package gpapi

import "github.com/DanielPopoola/gp-payment-gateway/internal/application"

const (
	grantTypeClientCredentials = "client_credentials"
	accountNameTransactions    = "transaction_processing"
	transactionTypeSale        = "SALE"
	captureModeLater           = "LATER"
	entryModeECOM              = "ECOM"
)

type accessTokenRequest struct {
	AppID       string   `json:"app_id"`
	Nonce       string   `json:"nonce"`
	Secret      string   `json:"secret"`
	GrantType   string   `json:"grant_type"`
	Permissions []string `json:"permissions,omitempty"`
}

type accessTokenResponse struct {
	Token           string `json:"token"`
	Type            string `json:"type"`
	SecondsToExpire int    `json:"seconds_to_expire"`
}

type billingAddress struct {
	PostalCode string `json:"postal_code,omitempty"`
}

type paymentMethod struct {
	EntryMode      string          `json:"entry_mode"`
	ID             string          `json:"id"`
	BillingAddress *billingAddress `json:"billing_address,omitempty"`
}

type transactionRequest struct {
	AccountName     string        `json:"account_name"`
	Channel         string        `json:"channel"`
	Type            string        `json:"type"`
	CaptureMode     string        `json:"capture_mode"`
	Amount          string        `json:"amount"`
	Currency        string        `json:"currency"`
	Country         string        `json:"country"`
	Reference       string        `json:"reference"`
	AllowDuplicates bool          `json:"allow_duplicates"`
	PaymentMethod   paymentMethod `json:"payment_method"`
}

type captureRequest struct{}

type transactionAction struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	ResultCode string `json:"result_code"`
}

type transactionResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	Amount    string            `json:"amount"`
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Action    transactionAction `json:"action"`
}

func (r *transactionResponse) toOutcome() *application.TransactionOutcome {
	return &application.TransactionOutcome{
		ResponseCode:    r.Action.ResultCode,
		ResponseMessage: r.Status,
		TransactionID:   r.ID,
	}
}

type errorResponse struct {
	ErrorCode                string `json:"error_code"`
	DetailedErrorCode        string `json:"detailed_error_code"`
	DetailedErrorDescription string `json:"detailed_error_description"`
}
