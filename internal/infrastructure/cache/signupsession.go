package cache

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// signupSessionPrefix is the Redis key prefix for signup sessions
	signupSessionPrefix = "newsletter:signup:session:"

	// DefaultSignupSessionTTL bounds how long a visitor can take to
	// finish the multi-step form.
	DefaultSignupSessionTTL = 24 * time.Hour
)

// SignupState tracks which step of the multi-step form a visitor's
// session has completed. This is the per-session state machine of the
// HTTP boundary; the subscription's own lifecycle lives in the database
// and is never derived from these flags.
type SignupState string

const (
	// SignupStateStart: no step completed, the email form is next.
	SignupStateStart SignupState = "start"

	// SignupStateAwaitingCode: the email was submitted, the code form
	// is next.
	SignupStateAwaitingCode SignupState = "awaiting_code"

	// SignupStateDone: the subscription was confirmed in this session.
	SignupStateDone SignupState = "done"
)

// SignupSession is the per-visitor state of the multi-step signup form.
type SignupSession struct {
	Token     string      `json:"token"`
	State     SignupState `json:"state"`
	Email     string      `json:"email,omitempty"`
	CreatedAt int64       `json:"created_at"` // Unix timestamp in milliseconds
}

// SignupSessionStore keeps signup sessions in Redis, keyed by the
// session token carried in the visitor's cookie.
type SignupSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSignupSessionStore creates a new signup session store
func NewSignupSessionStore(client *redis.Client, ttl time.Duration) *SignupSessionStore {
	if ttl == 0 {
		ttl = DefaultSignupSessionTTL
	}
	return &SignupSessionStore{
		client: client,
		prefix: signupSessionPrefix,
		ttl:    ttl,
	}
}

// GenerateSessionToken generates a cryptographically secure session token
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Store saves a signup session, refreshing its TTL.
func (s *SignupSessionStore) Store(ctx context.Context, session *SignupSession) error {
	if session == nil {
		return errors.New("session cannot be nil")
	}
	if session.Token == "" {
		return errors.New("session token cannot be empty")
	}
	if session.State == "" {
		session.State = SignupStateStart
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = time.Now().UnixMilli()
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal signup session: %w", err)
	}

	key := s.prefix + session.Token
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store signup session: %w", err)
	}

	return nil
}

// Get retrieves a signup session by token. Returns nil when the session
// does not exist or has expired.
func (s *SignupSessionStore) Get(ctx context.Context, token string) (*SignupSession, error) {
	if token == "" {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.prefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get signup session: %w", err)
	}

	var session SignupSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signup session: %w", err)
	}

	return &session, nil
}

// Delete removes a signup session.
func (s *SignupSessionStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.prefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete signup session: %w", err)
	}
	return nil
}
