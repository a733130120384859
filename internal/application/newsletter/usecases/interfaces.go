package usecases

import "context"

// Mailer composes and hands off the confirmation email. Implementations
// build the activation URL from the recipient and token; delivery beyond
// the SMTP handoff is not guaranteed and not retried here.
type Mailer interface {
	SendConfirmationEmail(to, locale, code, activationToken string) error
}

// ConfirmAttemptLimiter throttles confirmation attempts per email so the
// short code cannot be brute-forced through the confirm endpoints.
type ConfirmAttemptLimiter interface {
	// Allowed reports whether another attempt for the email is permitted.
	Allowed(ctx context.Context, email string) (bool, error)

	// RecordFailure counts a failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error

	// Reset clears the failure count after a successful confirmation.
	Reset(ctx context.Context, email string) error
}
