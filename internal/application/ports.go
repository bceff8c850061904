package application

import (
	"context"

	"github.com/DanielPopoola/gp-payment-gateway/internal/domain"
)

// ResponseCodeSuccess is the only gateway response code that counts as approval.
const ResponseCodeSuccess = "SUCCESS"

// GatewayClient is the port for the remote payment processor.
//
// A returned error is always a processor fault (*GatewayError). A decline is
// not an error: it comes back as an outcome whose ResponseCode is not SUCCESS.
type GatewayClient interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (*TransactionOutcome, error)
	CaptureByID(ctx context.Context, transactionID string) (*TransactionOutcome, error)
}

// AccessTokenIssuer issues short-lived tokens for client-side card tokenization.
type AccessTokenIssuer interface {
	GenerateAccessToken(ctx context.Context, permissions []string) (*AccessToken, error)
}

// AuthorizationRequest is what the gateway needs to place a hold on a card.
type AuthorizationRequest struct {
	Amount  domain.Money
	Token   string
	Address domain.SanitizedAddress

	// AllowDuplicates disables the processor's duplicate-transaction check.
	// Test cards and caller resubmissions reuse the same token and amount, so
	// the check is turned off; the price is that a resubmitted request can
	// place a second hold.
	AllowDuplicates bool
}

// TransactionOutcome is the processor's answer to an authorize or capture call.
type TransactionOutcome struct {
	ResponseCode    string
	ResponseMessage string
	TransactionID   string
}

// Approved reports whether the processor accepted the transaction.
func (o *TransactionOutcome) Approved() bool {
	return o != nil && o.ResponseCode == ResponseCodeSuccess
}

type AccessToken struct {
	Token           string
	SecondsToExpire int
}
