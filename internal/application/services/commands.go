package services

import "github.com/DanielPopoola/gp-payment-gateway/internal/domain"

// ProcessPaymentCommand carries the caller's fields as received, before validation.
type ProcessPaymentCommand struct {
	PaymentToken string
	BillingZip   string
	Amount       string
}

func (c ProcessPaymentCommand) rawFields() domain.RawPaymentFields {
	return domain.RawPaymentFields{
		Token:             c.PaymentToken,
		BillingPostalCode: c.BillingZip,
		Amount:            c.Amount,
	}
}
