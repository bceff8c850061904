package services

import (
	"github.com/DanielPopoola/gp-payment-gateway/internal/domain"
)

// validationDetails returns the caller-facing message for a validation error,
// without the validator's internal field dump.
func validationDetails(err error) string {
	if domainErr, ok := domain.AsDomainError(err); ok {
		return domainErr.Message
	}
	return domain.MsgMissingField
}
