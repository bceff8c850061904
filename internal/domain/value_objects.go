package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// CurrencyEUR is the only currency the gateway charges in.
const CurrencyEUR = "EUR"

// currencyExponent is the number of minor-unit digits for EUR.
const currencyExponent = 2

// maxMinorUnits is the largest amount, in cents, that fits the wire format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errors.New("amount must be positive")
	}
	if !fitsMinorUnits(amount) {
		return Money{}, errors.New("amount is too large")
	}
	if currency == "" {
		return Money{}, errors.New("currency is required")
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// MinorUnits returns the amount in cents as the gateway expects it on the wire.
func (m Money) MinorUnits() int64 {
	return m.Amount.Shift(currencyExponent).Round(0).IntPart()
}

func fitsMinorUnits(amount decimal.Decimal) bool {
	return amount.Shift(currencyExponent).Round(0).LessThanOrEqual(maxMinorUnits)
}

func (m Money) String() string {
	return m.Amount.StringFixed(currencyExponent) + " " + m.Currency
}
