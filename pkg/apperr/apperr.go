package apperr

import (
	"errors"
	"fmt"
)

// One error contract shared by the customer and vendor call paths.
// Controllers map these onto HTTP codes in pkg/resp.
var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrLineNotFound      = errors.New("cart line not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrEmailTaken        = errors.New("email already registered")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrItemsUnavailable  = errors.New("one or more items are no longer available")
)

// CreationError reports a failed order submission. The cart is never
// mutated when one of these is returned, so the caller may simply retry.
type CreationError struct {
	Reason string
	Err    error
}

func (e *CreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order creation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("order creation failed: %s", e.Reason)
}

func (e *CreationError) Unwrap() error { return e.Err }

func Creation(reason string, err error) *CreationError {
	return &CreationError{Reason: reason, Err: err}
}
