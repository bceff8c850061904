// Package domain holds the validated payment request and the rules applied to
// caller-supplied payment data before any gateway call is made.
package domain

import (
	"strings"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

// PaymentRequest is a validated request ready for authorization.
type PaymentRequest struct {
	Token             string
	BillingPostalCode string
	Amount            Money
}

// Address returns the sanitized billing address for the request.
func (r *PaymentRequest) Address() SanitizedAddress {
	return NewSanitizedAddress(r.BillingPostalCode)
}

// RawPaymentFields are the fields exactly as the caller sent them.
type RawPaymentFields struct {
	Token             string `validate:"required"`
	BillingPostalCode string `validate:"required"`
	Amount            string `validate:"required"`
}

var validate = validator.New()

// NewPaymentRequest validates the raw caller fields. Token, postal code and
// amount are all required; a missing amount is rejected, never defaulted.
// The amount must parse as a decimal and stay positive once rounded to cents.
func NewPaymentRequest(raw RawPaymentFields) (*PaymentRequest, error) {
	fields := RawPaymentFields{
		Token:             strings.TrimSpace(raw.Token),
		BillingPostalCode: strings.TrimSpace(raw.BillingPostalCode),
		Amount:            strings.TrimSpace(raw.Amount),
	}

	if err := validate.Struct(fields); err != nil {
		return nil, NewMissingFieldError(err)
	}

	amount, err := ParseAmount(fields.Amount)
	if err != nil {
		return nil, err
	}

	money, err := NewMoney(amount, CurrencyEUR)
	if err != nil {
		return nil, NewInvalidAmountError(fields.Amount)
	}

	return &PaymentRequest{
		Token:             fields.Token,
		BillingPostalCode: fields.BillingPostalCode,
		Amount:            money,
	}, nil
}

// ParseAmount parses caller text into a positive amount rounded half-up to cents.
// Amounts whose cent value does not fit an int64 are rejected.
func ParseAmount(text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, NewInvalidAmountError(text)
	}

	amount = amount.Round(currencyExponent)
	if !amount.IsPositive() || !fitsMinorUnits(amount) {
		return decimal.Zero, NewInvalidAmountError(text)
	}
	return amount, nil
}
