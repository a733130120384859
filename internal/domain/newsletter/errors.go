package newsletter

import (
	"inkletter/internal/shared/errors"
)

// Domain error kinds of the double opt-in flow. These carry user-facing
// messages and are matched with errors.Is by the HTTP layer; storage and
// mailer failures are wrapped as internal errors so only a generic
// message ever reaches the visitor.
var (
	// ErrEmailAlreadyActivated signals a registration or activation
	// attempt for an address that already confirmed its subscription.
	ErrEmailAlreadyActivated = errors.NewConflictError("this email address has already been activated")

	// ErrEmailExists signals a registration attempt for an address with a
	// pending, unconfirmed subscription. Callers fall back to a resend.
	ErrEmailExists = errors.NewConflictError("this email address is already awaiting confirmation")

	// ErrEmailNotFound signals a confirm or resend for an unknown address.
	ErrEmailNotFound = errors.NewNotFoundError("no subscription exists for this email address")

	// ErrTokenInvalid signals a confirmation code or activation token
	// that does not match the stored secret.
	ErrTokenInvalid = errors.NewBadRequestError("the confirmation code you have provided is not valid")

	// ErrInvalidRequest covers malformed input that never reaches the
	// record store, e.g. an activation URL whose email segment does not
	// decode to a syntactically valid address.
	ErrInvalidRequest = errors.NewValidationError("the request could not be processed")

	// ErrTooManyAttempts signals that the per-email confirmation attempt
	// budget is exhausted.
	ErrTooManyAttempts = errors.NewTooManyRequestsError("too many confirmation attempts, please try again later")
)

// NewDatabaseError wraps a persistence-layer failure. The cause is kept
// for logging; the message rendered to the visitor stays generic.
func NewDatabaseError(cause error) *errors.AppError {
	return errors.NewInternalError("newsletter storage failure").WithCause(cause)
}

// NewMailerError wraps a mail-transport failure. The subscription record
// is persisted before any send is attempted, so the record stays
// resendable when this occurs.
func NewMailerError(cause error) *errors.AppError {
	return errors.NewInternalError("newsletter mail dispatch failure").WithCause(cause)
}
