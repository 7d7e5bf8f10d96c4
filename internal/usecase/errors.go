package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrMixedMode blocks adding an item whose purchase mode conflicts with
	// the items already in the cart. It blocks the add, never the checkout.
	ErrMixedMode = errors.New("cart cannot mix one-time and subscription items")

	// ErrTransientNetwork marks order/payment calls that failed at transport
	// level. Retry is user-triggered only and keeps the idempotency key.
	ErrTransientNetwork = errors.New("transient network failure")

	// ErrCredential is the widget-reported bad card data outcome; the
	// coordinator returns to the credential step.
	ErrCredential = errors.New("card credential error")

	// ErrCancelled is raised when the user navigates away or switches
	// instrument mid-flight. It is silent: no error is surfaced to the user.
	ErrCancelled = errors.New("attempt cancelled")

	// ErrAttemptInFlight rejects a second submission while an attempt for the
	// same session has not reached a terminal state.
	ErrAttemptInFlight = errors.New("checkout attempt already in flight")

	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError is a local precondition failure. It never reaches the
// network layer and is non-retryable until the user fixes the input.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// PaymentRejectedError is a terminal gateway decline for the attempt. The
// failure is instrument-specific: the order survives and a fresh attempt with
// another instrument may reuse it.

type PaymentRejectedError struct {
	Status       string
	StatusDetail string
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("payment rejected: %s (%s)", e.Status, e.StatusDetail)
}
