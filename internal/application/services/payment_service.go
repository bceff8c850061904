package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/domain"
)

var errGatewayNotConfigured = errors.New("gateway client is not configured")

// PaymentService runs the authorize-then-capture sequence for one payment.
type PaymentService struct {
	gateway application.GatewayClient
	logger  *slog.Logger
}

func NewPaymentService(gateway application.GatewayClient, logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// ProcessPayment validates the command, authorizes the amount and, only when
// authorization is approved, captures it by the authorization's transaction id.
//
// Validation errors, declines and gateway faults are reported in the returned
// result. The error return is reserved for programmer errors such as a
// missing gateway client or a client that breaks its contract.
//
// Exactly one authorize call and at most one capture call are made; neither is
// retried. Gateway calls do not inherit cancellation from ctx: once a hold is
// placed the capture is always attempted.
func (s *PaymentService) ProcessPayment(ctx context.Context, cmd ProcessPaymentCommand) (*PaymentResult, error) {
	if s.gateway == nil {
		return nil, application.NewInternalError(errGatewayNotConfigured)
	}

	result := &PaymentResult{State: StateValidating}

	req, err := domain.NewPaymentRequest(cmd.rawFields())
	if err != nil {
		s.logger.InfoContext(ctx, "payment rejected by validation", "error", err)
		return result.fail(validationFailure(err)), nil
	}

	gatewayCtx := context.WithoutCancel(ctx)
	logger := s.logger.With("amount", req.Amount.String())

	result.State = StateAuthorizing
	auth, err := s.gateway.Authorize(gatewayCtx, application.AuthorizationRequest{
		Amount:          req.Amount,
		Token:           req.Token,
		Address:         req.Address(),
		AllowDuplicates: true,
	})
	failure, err := checkOutcome(PhaseAuthorize, auth, err)
	if err != nil {
		return nil, err
	}
	if failure != nil {
		logger.WarnContext(ctx, "authorization failed",
			"phase", failure.Phase,
			"kind", failure.Kind,
			"response_code", failure.ResponseCode,
			"details", failure.Details,
			"error", failure.Err,
		)
		return result.fail(failure), nil
	}

	result.AuthorizationID = auth.TransactionID
	result.Entries = append(result.Entries, newAuthorizationEntry(auth.TransactionID))
	logger = logger.With("authorization_id", auth.TransactionID)
	logger.InfoContext(ctx, "payment authorized")

	result.State = StateCapturing
	capture, err := s.gateway.CaptureByID(gatewayCtx, auth.TransactionID)
	failure, err = checkOutcome(PhaseCapture, capture, err)
	if err != nil {
		logger.ErrorContext(ctx, "capture failed with an internal error, funds remain authorized",
			"phase", PhaseCapture,
			"error", err,
		)
		return nil, err
	}
	if failure != nil {
		logger.WarnContext(ctx, "capture failed after successful authorization, funds remain authorized",
			"phase", failure.Phase,
			"kind", failure.Kind,
			"response_code", failure.ResponseCode,
			"details", failure.Details,
			"error", failure.Err,
		)
		return result.fail(failure), nil
	}

	result.Entries = append(result.Entries, newCaptureEntry(capture.TransactionID))
	result.State = StateCompleted
	logger.InfoContext(ctx, "payment captured", "capture_id", capture.TransactionID)

	return result, nil
}

// checkOutcome classifies a gateway answer. It returns a business failure for
// faults and declines, and an error when the client broke its contract or
// reported an internal error such as rejected credentials.
func checkOutcome(phase Phase, outcome *application.TransactionOutcome, callErr error) (*Failure, error) {
	if callErr != nil {
		if _, ok := application.IsServiceError(callErr); ok {
			return nil, callErr
		}
		return apiFailure(phase, callErr), nil
	}
	if outcome == nil {
		return nil, application.NewInternalError(
			fmt.Errorf("gateway returned neither outcome nor error during %s", phase),
		)
	}
	if !outcome.Approved() {
		return declineFailure(phase, outcome), nil
	}
	if outcome.TransactionID == "" {
		return nil, application.NewInternalError(
			fmt.Errorf("gateway approved %s without a transaction id", phase),
		)
	}
	return nil, nil
}
