package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation on caller-supplied data
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation = "VALIDATION_ERROR"
)

const (
	MsgMissingField  = "missing field"
	MsgInvalidAmount = "invalid amount"
)

var (
	ErrMissingRequiredField = errors.New(MsgMissingField)
	ErrInvalidAmount        = errors.New(MsgInvalidAmount)
)

func NewMissingFieldError(err error) *DomainError {
	if err == nil {
		err = ErrMissingRequiredField
	}
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: MsgMissingField,
		Err:     err,
	}
}

func NewInvalidAmountError(raw string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: MsgInvalidAmount,
		Err:     fmt.Errorf("%w: %q", ErrInvalidAmount, raw),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
