package usecases

import (
	"context"
	"fmt"

	"inkletter/internal/domain/newsletter"
	vo "inkletter/internal/domain/newsletter/valueobjects"
	"inkletter/internal/shared/logger"
)

type RegisterEmailCommand struct {
	Email  string
	Locale string
}

// RegisterEmailUseCase is step 1 of the double opt-in flow: it creates a
// pending subscription and dispatches the confirmation email. The record
// is persisted before the send is attempted, so a mail failure leaves a
// valid, resendable subscription rather than an orphaned email.
type RegisterEmailUseCase struct {
	repo   newsletter.Repository
	mailer Mailer
	logger logger.Interface
}

func NewRegisterEmailUseCase(repo newsletter.Repository, mailer Mailer, logger logger.Interface) *RegisterEmailUseCase {
	return &RegisterEmailUseCase{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (uc *RegisterEmailUseCase) Execute(ctx context.Context, cmd RegisterEmailCommand) error {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return fmt.Errorf("%w: %s", newsletter.ErrInvalidRequest, err)
	}

	locale, err := vo.NewLocale(cmd.Locale)
	if err != nil {
		return fmt.Errorf("%w: %s", newsletter.ErrInvalidRequest, err)
	}

	existing, err := uc.repo.FindByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err)
		return err
	}

	if existing != nil {
		if existing.IsConfirmed() {
			uc.logger.Debugw("registration for activated email", "email", email.String())
			return newsletter.ErrEmailAlreadyActivated
		}
		uc.logger.Debugw("registration for pending email", "email", email.String())
		return newsletter.ErrEmailExists
	}

	subscription, err := newsletter.NewSubscription(email, locale)
	if err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err)
		return newsletter.ErrInvalidRequest.WithCause(err)
	}

	if _, err := subscription.EnsureActivationToken(); err != nil {
		uc.logger.Errorw("failed to generate activation token", "error", err)
		return newsletter.NewDatabaseError(err)
	}

	// The unique (email, list) index closes the race between two
	// concurrent registrations: the loser's insert surfaces as
	// ErrEmailExists out of the repository.
	if err := uc.repo.Create(ctx, subscription); err != nil {
		uc.logger.Errorw("failed to persist subscription", "error", err, "email", email.String())
		return err
	}

	if err := uc.mailer.SendConfirmationEmail(
		email.String(),
		locale.Base(),
		subscription.ConfirmationCode(),
		subscription.ActivationToken(),
	); err != nil {
		uc.logger.Errorw("failed to dispatch confirmation email", "error", err, "email", email.String())
		return newsletter.NewMailerError(err)
	}

	uc.logger.Infow("subscription registered", "email", email.String(), "locale", locale.String())
	return nil
}
