package newsletter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "inkletter/internal/domain/newsletter/valueobjects"
)

func newPendingSubscription(t *testing.T) *Subscription {
	t.Helper()
	email, err := vo.NewEmail("reader@example.com")
	require.NoError(t, err)

	sub, err := NewSubscription(email, vo.MustLocale("en"))
	require.NoError(t, err)
	return sub
}

func TestNewSubscription(t *testing.T) {
	sub := newPendingSubscription(t)

	assert.Equal(t, "reader@example.com", sub.Email().String())
	assert.Equal(t, ListName, sub.List())
	assert.NotEmpty(t, sub.ConfirmationCode())
	assert.Empty(t, sub.ActivationToken(), "activation token is generated lazily")
	assert.False(t, sub.IsConfirmed())
	assert.Nil(t, sub.ConfirmationDate())
	assert.False(t, sub.CreationDate().IsZero())
}

func TestNewSubscriptionRequiresEmail(t *testing.T) {
	_, err := NewSubscription(nil, vo.MustLocale("en"))
	assert.Error(t, err)
}

func TestEnsureActivationTokenIsStable(t *testing.T) {
	sub := newPendingSubscription(t)

	created, err := sub.EnsureActivationToken()
	require.NoError(t, err)
	assert.True(t, created)

	token := sub.ActivationToken()
	assert.NotEmpty(t, token)

	created, err = sub.EnsureActivationToken()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, token, sub.ActivationToken())
}

func TestConfirmWithCode(t *testing.T) {
	sub := newPendingSubscription(t)

	err := sub.ConfirmWithCode("000000000000")
	assert.True(t, errors.Is(err, ErrTokenInvalid))
	assert.False(t, sub.IsConfirmed())
	assert.Nil(t, sub.ConfirmationDate())

	require.NoError(t, sub.ConfirmWithCode(sub.ConfirmationCode()))
	assert.True(t, sub.IsConfirmed())
	require.NotNil(t, sub.ConfirmationDate())
	assert.False(t, sub.ConfirmationDate().Before(sub.CreationDate()))
}

func TestConfirmWithCodeIsIdempotent(t *testing.T) {
	sub := newPendingSubscription(t)
	require.NoError(t, sub.ConfirmWithCode(sub.ConfirmationCode()))

	first := *sub.ConfirmationDate()
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, sub.ConfirmWithCode(sub.ConfirmationCode()))
	assert.Equal(t, first, *sub.ConfirmationDate(), "confirmation date is set exactly once")

	err := sub.ConfirmWithCode("000000000000")
	assert.True(t, errors.Is(err, ErrTokenInvalid), "a wrong code still fails after activation")
}

func TestConfirmWithActivationToken(t *testing.T) {
	sub := newPendingSubscription(t)
	_, err := sub.EnsureActivationToken()
	require.NoError(t, err)

	err = sub.ConfirmWithActivationToken("bogus")
	assert.True(t, errors.Is(err, ErrTokenInvalid))

	require.NoError(t, sub.ConfirmWithActivationToken(sub.ActivationToken()))
	assert.True(t, sub.IsConfirmed())

	err = sub.ConfirmWithActivationToken(sub.ActivationToken())
	assert.True(t, errors.Is(err, ErrEmailAlreadyActivated), "a stale link reports the activated state")
}

func TestConfirmWithActivationTokenWithoutToken(t *testing.T) {
	sub := newPendingSubscription(t)

	err := sub.ConfirmWithActivationToken("")
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestReconstructSubscription(t *testing.T) {
	email, err := vo.NewEmail("reader@example.com")
	require.NoError(t, err)
	created := time.Now().Add(-time.Hour)
	confirmedAt := time.Now()

	sub, err := ReconstructSubscription(7, email, ListName, vo.MustLocale("de"), "abc123", "tok", true, created, &confirmedAt)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sub.ID())
	assert.True(t, sub.IsConfirmed())

	_, err = ReconstructSubscription(0, email, ListName, vo.MustLocale("de"), "abc123", "", false, created, nil)
	assert.Error(t, err, "zero ID")

	_, err = ReconstructSubscription(7, email, ListName, vo.MustLocale("de"), "abc123", "", true, created, nil)
	assert.Error(t, err, "confirmed without confirmation date")
}

func TestSetID(t *testing.T) {
	sub := newPendingSubscription(t)

	require.NoError(t, sub.SetID(42))
	assert.Equal(t, uint(42), sub.ID())

	assert.Error(t, sub.SetID(43), "ID is immutable once assigned")
}
