package newsletter

import (
	"fmt"
	"time"

	vo "inkletter/internal/domain/newsletter/valueobjects"
)

// ListName is the logical mailing list this deployment manages. The
// blog runs a single list; the column exists so the uniqueness invariant
// is scoped to (email, list) rather than email alone.
const ListName = "inkletter_blog"

// Subscription is the aggregate root of the double opt-in flow. Its
// lifecycle is created-then-confirmed: the application mutates it
// exactly twice in the happy path and never deletes it. Once confirmed
// it does not change again.
type Subscription struct {
	id               uint
	email            *vo.Email
	list             string
	locale           vo.Locale
	confirmationCode string
	activationToken  string
	confirmed        bool
	creationDate     time.Time
	confirmationDate *time.Time
}

// NewSubscription creates a pending subscription with a freshly
// generated confirmation code. The activation token is generated lazily
// via EnsureActivationToken.
func NewSubscription(email *vo.Email, locale vo.Locale) (*Subscription, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	code, err := vo.GenerateConfirmationCode()
	if err != nil {
		return nil, err
	}

	return &Subscription{
		email:            email,
		list:             ListName,
		locale:           locale,
		confirmationCode: code,
		creationDate:     time.Now(),
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id uint,
	email *vo.Email,
	list string,
	locale vo.Locale,
	confirmationCode string,
	activationToken string,
	confirmed bool,
	creationDate time.Time,
	confirmationDate *time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if confirmationCode == "" {
		return nil, fmt.Errorf("confirmation code is required")
	}
	if confirmed && confirmationDate == nil {
		return nil, fmt.Errorf("confirmed subscription must carry a confirmation date")
	}

	return &Subscription{
		id:               id,
		email:            email,
		list:             list,
		locale:           locale,
		confirmationCode: confirmationCode,
		activationToken:  activationToken,
		confirmed:        confirmed,
		creationDate:     creationDate,
		confirmationDate: confirmationDate,
	}, nil
}

// EnsureActivationToken generates the URL token on first need and keeps
// it stable afterwards. It reports whether the token was newly created
// so the caller knows a persist is required.
func (s *Subscription) EnsureActivationToken() (created bool, err error) {
	if s.activationToken != "" {
		return false, nil
	}

	token, err := vo.GenerateActivationToken()
	if err != nil {
		return false, err
	}
	s.activationToken = token
	return true, nil
}

// ConfirmWithCode transitions the subscription to confirmed when the
// submitted code matches the stored one. Re-confirming with the correct
// code is a no-op: the confirmation date is set exactly once.
func (s *Subscription) ConfirmWithCode(submittedCode string) error {
	if !vo.SecretsEqual(submittedCode, s.confirmationCode) {
		return ErrTokenInvalid
	}
	if s.confirmed {
		return nil
	}

	now := time.Now()
	s.confirmed = true
	s.confirmationDate = &now
	return nil
}

// ConfirmWithActivationToken is the link-based transition. Unlike the
// code path, confirming an already activated subscription is an error,
// so a stale activation link produces a meaningful message.
func (s *Subscription) ConfirmWithActivationToken(token string) error {
	if s.confirmed {
		return ErrEmailAlreadyActivated
	}
	if s.activationToken == "" || !vo.SecretsEqual(token, s.activationToken) {
		return ErrTokenInvalid
	}

	now := time.Now()
	s.confirmed = true
	s.confirmationDate = &now
	return nil
}

func (s *Subscription) ID() uint {
	return s.id
}

// SetID assigns the persistence identity after the initial insert.
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) Email() *vo.Email {
	return s.email
}

func (s *Subscription) List() string {
	return s.list
}

func (s *Subscription) Locale() vo.Locale {
	return s.locale
}

func (s *Subscription) ConfirmationCode() string {
	return s.confirmationCode
}

// ActivationToken returns the URL token, empty until first ensured.
func (s *Subscription) ActivationToken() string {
	return s.activationToken
}

func (s *Subscription) IsConfirmed() bool {
	return s.confirmed
}

func (s *Subscription) CreationDate() time.Time {
	return s.creationDate
}

func (s *Subscription) ConfirmationDate() *time.Time {
	return s.confirmationDate
}
