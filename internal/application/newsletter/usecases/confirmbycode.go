package usecases

import (
	"context"
	"errors"

	"inkletter/internal/domain/newsletter"
	"inkletter/internal/shared/logger"
)

type ConfirmByCodeCommand struct {
	Email string
	Code  string
}

// ConfirmByCodeUseCase is step 2 of the double opt-in flow: the visitor
// transcribes the code from the confirmation email. Attempts are
// throttled per email; whether the address exists is never revealed on
// this path, both the unknown-email and wrong-code cases answer with
// ErrTokenInvalid.
//
// Re-confirming with the correct code succeeds without touching the
// record, so a reload of the code form after success stays harmless even
// when the session-level replay guard has been bypassed.
type ConfirmByCodeUseCase struct {
	repo     newsletter.Repository
	attempts ConfirmAttemptLimiter
	logger   logger.Interface
}

func NewConfirmByCodeUseCase(repo newsletter.Repository, attempts ConfirmAttemptLimiter, logger logger.Interface) *ConfirmByCodeUseCase {
	return &ConfirmByCodeUseCase{
		repo:     repo,
		attempts: attempts,
		logger:   logger,
	}
}

func (uc *ConfirmByCodeUseCase) Execute(ctx context.Context, cmd ConfirmByCodeCommand) error {
	allowed, err := uc.attempts.Allowed(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check confirmation attempts", "error", err)
		return newsletter.NewDatabaseError(err)
	}
	if !allowed {
		uc.logger.Warnw("confirmation attempts exhausted", "email", cmd.Email)
		return newsletter.ErrTooManyAttempts
	}

	subscription, err := uc.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err)
		return err
	}
	if subscription == nil {
		uc.recordFailure(ctx, cmd.Email)
		return newsletter.ErrTokenInvalid
	}

	wasConfirmed := subscription.IsConfirmed()

	if err := subscription.ConfirmWithCode(cmd.Code); err != nil {
		if errors.Is(err, newsletter.ErrTokenInvalid) {
			uc.recordFailure(ctx, cmd.Email)
		}
		return err
	}

	if !wasConfirmed {
		if err := uc.repo.MarkConfirmed(ctx, subscription); err != nil {
			uc.logger.Errorw("failed to persist confirmation", "error", err, "email", cmd.Email)
			return err
		}
		uc.logger.Infow("subscription confirmed", "email", cmd.Email)
	}

	if err := uc.attempts.Reset(ctx, cmd.Email); err != nil {
		uc.logger.Warnw("failed to reset confirmation attempts", "error", err, "email", cmd.Email)
	}

	return nil
}

func (uc *ConfirmByCodeUseCase) recordFailure(ctx context.Context, email string) {
	if err := uc.attempts.RecordFailure(ctx, email); err != nil {
		uc.logger.Warnw("failed to record confirmation attempt", "error", err, "email", email)
	}
}
