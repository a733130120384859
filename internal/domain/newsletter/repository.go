package newsletter

import "context"

// Repository defines the persistence boundary for subscriptions.
// Implementations must enforce the uniqueness of (email, list) with a
// database constraint and surface a violation as ErrEmailExists, so
// concurrent registrations of the same address cannot both succeed.
type Repository interface {
	// FindByEmail retrieves the subscription for (email, ListName).
	// Returns nil without error when no record exists. More than one
	// matching row is a data-integrity violation and returns an error.
	FindByEmail(ctx context.Context, email string) (*Subscription, error)

	// Create inserts a new subscription and assigns its ID.
	Create(ctx context.Context, subscription *Subscription) error

	// Update persists mutations of an existing subscription.
	Update(ctx context.Context, subscription *Subscription) error

	// MarkConfirmed persists the confirmed status and confirmation date
	// of an already-confirmed subscription, leaving the other columns
	// untouched.
	MarkConfirmed(ctx context.Context, subscription *Subscription) error
}
