package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrHandleReleased      = errors.New("certificate handle has been released")
	ErrValidation          = errors.New("profile validation failed")
	ErrIncorrectPassphrase = errors.New("incorrect passphrase")
	ErrCertNotFound        = errors.New("certificate not found in store")
)

// ConversionError reports a string or byte value that could not be encoded
// into a certificate name or extension.
type ConversionError struct {
	Field string
	Value string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot encode %s value %q", e.Field, e.Value)
}

// CryptoOperationError aggregates the failure of a composite cryptographic
// operation. Stack holds the underlying causes in the order they were
// recorded, outermost first.
type CryptoOperationError struct {
	Op    string
	Stack []error
}

func NewCryptoOperationError(op string, causes ...error) *CryptoOperationError {
	return &CryptoOperationError{Op: op, Stack: causes}
}

func (e *CryptoOperationError) Error() string {
	if len(e.Stack) == 0 {
		return e.Op + " failed"
	}
	msgs := make([]string, len(e.Stack))
	for i, err := range e.Stack {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s failed: %s", e.Op, strings.Join(msgs, ": "))
}

// Unwrap exposes the cause stack to errors.Is and errors.As.
func (e *CryptoOperationError) Unwrap() []error {
	return e.Stack
}
