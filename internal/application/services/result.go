package services

import (
	"fmt"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
)

// State is the orchestrator's position in the authorize/capture sequence.
type State string

const (
	StateValidating  State = "VALIDATING"
	StateAuthorizing State = "AUTHORIZING"
	StateCapturing   State = "CAPTURING"
	StateCompleted   State = "COMPLETED"
	StateFailed      State = "FAILED"
)

// Phase names the step a failure or success entry belongs to.
type Phase string

const (
	PhaseValidation Phase = "VALIDATION"
	PhaseAuthorize  Phase = "AUTHORIZE"
	PhaseCapture    Phase = "CAPTURE"
)

// Entry is one completed phase.
type Entry struct {
	Phase         Phase
	Message       string
	TransactionID string
}

func newAuthorizationEntry(transactionID string) Entry {
	return Entry{
		Phase:         PhaseAuthorize,
		Message:       fmt.Sprintf("Payment successful! Transaction ID: %s", transactionID),
		TransactionID: transactionID,
	}
}

func newCaptureEntry(transactionID string) Entry {
	return Entry{
		Phase:         PhaseCapture,
		Message:       fmt.Sprintf("Capture successful! Transaction ID: %s", transactionID),
		TransactionID: transactionID,
	}
}

// Failure is the single reason a run ended in StateFailed.
type Failure struct {
	// Kind is one of VALIDATION_ERROR, PAYMENT_DECLINED or API_ERROR.
	Kind    string
	Phase   Phase
	Details string

	// ResponseCode is set for declines.
	ResponseCode string
	// Err is the gateway fault or validation error behind the failure. It is
	// for logging only and never shown to callers.
	Err error
}

// PaymentResult is the terminal state of one orchestrator run.
type PaymentResult struct {
	State   State
	Entries []Entry
	Failure *Failure

	// AuthorizationID is kept even when capture fails, so the held funds can
	// be traced.
	AuthorizationID string
}

func (r *PaymentResult) Succeeded() bool {
	return r.State == StateCompleted
}

func (r *PaymentResult) fail(f *Failure) *PaymentResult {
	r.State = StateFailed
	r.Failure = f
	r.Entries = nil
	return r
}

func validationFailure(err error) *Failure {
	return &Failure{
		Kind:    application.ErrCodeValidation,
		Phase:   PhaseValidation,
		Details: validationDetails(err),
		Err:     err,
	}
}

func apiFailure(phase Phase, err error) *Failure {
	return &Failure{
		Kind:    application.ErrCodeAPI,
		Phase:   phase,
		Details: application.SafeMessage(err),
		Err:     err,
	}
}

func declineFailure(phase Phase, outcome *application.TransactionOutcome) *Failure {
	return &Failure{
		Kind:         application.ErrCodePaymentDeclined,
		Phase:        phase,
		Details:      outcome.ResponseMessage,
		ResponseCode: outcome.ResponseCode,
	}
}
