package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	confirmAttemptPrefix = "newsletter:confirm:attempts:"

	// DefaultMaxConfirmAttempts is the failed-attempt budget per email.
	DefaultMaxConfirmAttempts = 5

	// DefaultConfirmLockout is how long the counter, and with it the
	// lockout, persists after the first failure.
	DefaultConfirmLockout = 15 * time.Minute
)

// ConfirmAttemptStore counts failed confirmation attempts per email in
// Redis. The short manual code only stays safe against brute force
// because this budget exists.
type ConfirmAttemptStore struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
}

// NewConfirmAttemptStore creates a new attempt store.
func NewConfirmAttemptStore(client *redis.Client, maxAttempts int, lockout time.Duration) *ConfirmAttemptStore {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxConfirmAttempts
	}
	if lockout <= 0 {
		lockout = DefaultConfirmLockout
	}
	return &ConfirmAttemptStore{
		client:      client,
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

// Allowed reports whether another attempt for the email is permitted.
func (s *ConfirmAttemptStore) Allowed(ctx context.Context, email string) (bool, error) {
	attempts, err := s.client.Get(ctx, confirmAttemptPrefix+email).Int()
	if err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check confirmation attempts: %w", err)
	}
	return attempts < s.maxAttempts, nil
}

// RecordFailure counts a failed attempt against the email.
func (s *ConfirmAttemptStore) RecordFailure(ctx context.Context, email string) error {
	key := confirmAttemptPrefix + email

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record confirmation attempt: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.lockout).Err(); err != nil {
			return fmt.Errorf("failed to set attempt lockout: %w", err)
		}
	}
	return nil
}

// Reset clears the failure count after a successful confirmation.
func (s *ConfirmAttemptStore) Reset(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, confirmAttemptPrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to reset confirmation attempts: %w", err)
	}
	return nil
}
