package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkletter/internal/domain/newsletter"
	"inkletter/internal/shared/utils"
)

func TestConfirmByURL_Success(t *testing.T) {
	sub := pendingSubscription(t, "a@test.com")
	_, err := sub.EnsureActivationToken()
	require.NoError(t, err)

	repo := &mockRepository{
		findByEmailFn: func(ctx context.Context, email string) (*newsletter.Subscription, error) {
			return sub, nil
		},
	}
	limiter := &mockAttemptLimiter{}
	uc := NewConfirmByURLUseCase(repo, limiter, nopLogger{})

	cmd := ConfirmByURLCommand{
		ObfuscatedEmail: utils.ObfuscateEmail("a@test.com"),
		Token:           sub.ActivationToken(),
	}
	require.NoError(t, uc.Execute(context.Background(), cmd))

	assert.True(t, sub.IsConfirmed())
	require.Len(t, repo.confirmed, 1)
	assert.Equal(t, []string{"a@test.com"}, limiter.resets)
}

func TestConfirmByURL_MalformedEmailNeverHitsStore(t *testing.T) {
	repo := &mockRepository{
		findByEmailFn: func(ctx context.Context, email string) (*newsletter.Subscription, error) {
			t.Fatal("the store must not be consulted for a malformed email")
			return nil, nil
		},
	}
	uc := NewConfirmByURLUseCase(repo, &mockAttemptLimiter{}, nopLogger{})

	tests := []string{
		"%%%not-base64%%%",
		utils.ObfuscateEmail("not-an-email"),
	}
	for _, segment := range tests {
		err := uc.Execute(context.Background(), ConfirmByURLCommand{ObfuscatedEmail: segment, Token: "x"})
		assert.True(t, errors.Is(err, newsletter.ErrInvalidRequest))
	}
}

func TestConfirmByURL_UnknownEmail(t *testing.T) {
	uc := NewConfirmByURLUseCase(&mockRepository{}, &mockAttemptLimiter{}, nopLogger{})

	err := uc.Execute(context.Background(), ConfirmByURLCommand{
		ObfuscatedEmail: utils.ObfuscateEmail("nobody@test.com"),
		Token:           "x",
	})
	assert.True(t, errors.Is(err, newsletter.ErrEmailNotFound))
}

func TestConfirmByURL_AlreadyActivated(t *testing.T) {
	sub := confirmedSubscription(t, "a@test.com")
	repo := &mockRepository{
		findByEmailFn: func(ctx context.Context, email string) (*newsletter.Subscription, error) {
			return sub, nil
		},
	}
	uc := NewConfirmByURLUseCase(repo, &mockAttemptLimiter{}, nopLogger{})

	err := uc.Execute(context.Background(), ConfirmByURLCommand{
		ObfuscatedEmail: utils.ObfuscateEmail("a@test.com"),
		Token:           "whatever",
	})
	assert.True(t, errors.Is(err, newsletter.ErrEmailAlreadyActivated))
	assert.Empty(t, repo.confirmed)
}

func TestConfirmByURL_TokenMismatch(t *testing.T) {
	sub := pendingSubscription(t, "a@test.com")
	_, err := sub.EnsureActivationToken()
	require.NoError(t, err)

	repo := &mockRepository{
		findByEmailFn: func(ctx context.Context, email string) (*newsletter.Subscription, error) {
			return sub, nil
		},
	}
	limiter := &mockAttemptLimiter{}
	uc := NewConfirmByURLUseCase(repo, limiter, nopLogger{})

	err = uc.Execute(context.Background(), ConfirmByURLCommand{
		ObfuscatedEmail: utils.ObfuscateEmail("a@test.com"),
		Token:           "forged-token",
	})
	assert.True(t, errors.Is(err, newsletter.ErrTokenInvalid))
	assert.False(t, sub.IsConfirmed())
	assert.Equal(t, []string{"a@test.com"}, limiter.failures)
}

func TestConfirmByURL_Throttled(t *testing.T) {
	uc := NewConfirmByURLUseCase(&mockRepository{}, &mockAttemptLimiter{blocked: true}, nopLogger{})

	err := uc.Execute(context.Background(), ConfirmByURLCommand{
		ObfuscatedEmail: utils.ObfuscateEmail("a@test.com"),
		Token:           "x",
	})
	assert.True(t, errors.Is(err, newsletter.ErrTooManyAttempts))
}
