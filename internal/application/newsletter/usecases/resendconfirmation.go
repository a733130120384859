package usecases

import (
	"context"
	"fmt"

	"inkletter/internal/domain/newsletter"
	vo "inkletter/internal/domain/newsletter/valueobjects"
	"inkletter/internal/shared/logger"
)

type ResendConfirmationCommand struct {
	Email string
}

// ResendConfirmationUseCase re-dispatches the stored confirmation code
// and activation link. The code is deliberately not rotated: the email
// previously sent stays valid, so the visitor can use whichever copy
// arrives.
type ResendConfirmationUseCase struct {
	repo   newsletter.Repository
	mailer Mailer
	logger logger.Interface
}

func NewResendConfirmationUseCase(repo newsletter.Repository, mailer Mailer, logger logger.Interface) *ResendConfirmationUseCase {
	return &ResendConfirmationUseCase{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (uc *ResendConfirmationUseCase) Execute(ctx context.Context, cmd ResendConfirmationCommand) error {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return fmt.Errorf("%w: %s", newsletter.ErrInvalidRequest, err)
	}

	subscription, err := uc.repo.FindByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err)
		return err
	}
	if subscription == nil {
		return newsletter.ErrEmailNotFound
	}

	// Records created before the link-based flow existed have no token
	// yet; generate one and persist it before composing the email.
	created, err := subscription.EnsureActivationToken()
	if err != nil {
		uc.logger.Errorw("failed to generate activation token", "error", err)
		return newsletter.NewDatabaseError(err)
	}
	if created {
		if err := uc.repo.Update(ctx, subscription); err != nil {
			uc.logger.Errorw("failed to persist activation token", "error", err, "email", email.String())
			return err
		}
	}

	if err := uc.mailer.SendConfirmationEmail(
		email.String(),
		subscription.Locale().Base(),
		subscription.ConfirmationCode(),
		subscription.ActivationToken(),
	); err != nil {
		uc.logger.Errorw("failed to re-dispatch confirmation email", "error", err, "email", email.String())
		return newsletter.NewMailerError(err)
	}

	uc.logger.Infow("confirmation email re-sent", "email", email.String())
	return nil
}
