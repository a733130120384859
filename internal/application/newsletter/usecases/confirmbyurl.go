package usecases

import (
	"context"
	"errors"
	"fmt"

	"inkletter/internal/domain/newsletter"
	vo "inkletter/internal/domain/newsletter/valueobjects"
	"inkletter/internal/shared/logger"
	"inkletter/internal/shared/utils"
)

type ConfirmByURLCommand struct {
	// ObfuscatedEmail is the base64url-encoded address from the first
	// activation path segment. Encoding, not encryption: the token in
	// the second segment is what protects the endpoint.
	ObfuscatedEmail string
	Token           string
}

// ConfirmByURLUseCase is the link-based activation path. A malformed
// email segment fails before the record store is ever consulted; unlike
// the code path, an already activated address answers with a specific
// message, since the visitor followed a stale link rather than typing a
// code.
type ConfirmByURLUseCase struct {
	repo     newsletter.Repository
	attempts ConfirmAttemptLimiter
	logger   logger.Interface
}

func NewConfirmByURLUseCase(repo newsletter.Repository, attempts ConfirmAttemptLimiter, logger logger.Interface) *ConfirmByURLUseCase {
	return &ConfirmByURLUseCase{
		repo:     repo,
		attempts: attempts,
		logger:   logger,
	}
}

func (uc *ConfirmByURLUseCase) Execute(ctx context.Context, cmd ConfirmByURLCommand) error {
	decoded, err := utils.DeobfuscateEmail(cmd.ObfuscatedEmail)
	if err != nil {
		return fmt.Errorf("%w: %s", newsletter.ErrInvalidRequest, err)
	}

	email, err := vo.NewEmail(decoded)
	if err != nil {
		return fmt.Errorf("%w: %s", newsletter.ErrInvalidRequest, err)
	}

	allowed, err := uc.attempts.Allowed(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check confirmation attempts", "error", err)
		return newsletter.NewDatabaseError(err)
	}
	if !allowed {
		uc.logger.Warnw("confirmation attempts exhausted", "email", email.String())
		return newsletter.ErrTooManyAttempts
	}

	subscription, err := uc.repo.FindByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up subscription", "error", err)
		return err
	}
	if subscription == nil {
		return newsletter.ErrEmailNotFound
	}

	if err := subscription.ConfirmWithActivationToken(cmd.Token); err != nil {
		if errors.Is(err, newsletter.ErrTokenInvalid) {
			if recErr := uc.attempts.RecordFailure(ctx, email.String()); recErr != nil {
				uc.logger.Warnw("failed to record confirmation attempt", "error", recErr, "email", email.String())
			}
		}
		return err
	}

	if err := uc.repo.MarkConfirmed(ctx, subscription); err != nil {
		uc.logger.Errorw("failed to persist activation", "error", err, "email", email.String())
		return err
	}

	if err := uc.attempts.Reset(ctx, email.String()); err != nil {
		uc.logger.Warnw("failed to reset confirmation attempts", "error", err, "email", email.String())
	}

	uc.logger.Infow("subscription activated via link", "email", email.String())
	return nil
}
