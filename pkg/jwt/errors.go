package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrClaimNotFound = errors.New("claim not found")
)

// ErrInvalidType is returned when a claims segment or a claim value does
// not have the JSON type it must have.
type ErrInvalidType struct {
	Inner error
}

func (e *ErrInvalidType) Error() string {
	return fmt.Sprintf("invalid type: %v", e.Inner)
}

func (e *ErrInvalidType) Unwrap() error {
	return e.Inner
}

func NewInvalidTypeError(inner error) *ErrInvalidType {
	return &ErrInvalidType{Inner: inner}
}
