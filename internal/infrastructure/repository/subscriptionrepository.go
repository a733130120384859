package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inkletter/internal/domain/newsletter"
	"inkletter/internal/infrastructure/persistence/mappers"
	"inkletter/internal/infrastructure/persistence/models"
	"inkletter/internal/shared/logger"
)

// SubscriptionRepository implements the newsletter repository interface
// on gorm. All persistence failures are wrapped as internal database
// errors; the unique (email, list) index turns a lost registration race
// into ErrEmailExists or ErrEmailAlreadyActivated.
type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) newsletter.Repository {
	return &SubscriptionRepository{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

// FindByEmail retrieves the subscription for (email, ListName). A second
// matching row is a data-integrity violation and is reported, not
// swallowed.
func (r *SubscriptionRepository) FindByEmail(ctx context.Context, email string) (*newsletter.Subscription, error) {
	var rows []models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("email = ? AND list = ?", email, newsletter.ListName).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to query subscription", "email", email, "error", err)
		return nil, newsletter.NewDatabaseError(err)
	}

	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		entity, err := r.mapper.ToEntity(&rows[0])
		if err != nil {
			r.logger.Errorw("failed to map subscription row", "email", email, "error", err)
			return nil, newsletter.NewDatabaseError(err)
		}
		return entity, nil
	default:
		r.logger.Errorw("duplicate subscription rows", "email", email, "list", newsletter.ListName)
		return nil, newsletter.NewDatabaseError(gorm.ErrDuplicatedKey)
	}
}

// Create inserts a new subscription and assigns its ID. A duplicate-key
// violation means a concurrent registration won the race; the existing
// record decides which domain error the caller sees.
func (r *SubscriptionRepository) Create(ctx context.Context, subscription *newsletter.Subscription) error {
	model, err := r.mapper.ToModel(subscription)
	if err != nil {
		return newsletter.NewDatabaseError(err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.duplicateError(ctx, subscription.Email().String())
		}
		r.logger.Errorw("failed to insert subscription", "email", model.Email, "error", err)
		return newsletter.NewDatabaseError(err)
	}

	if err := subscription.SetID(model.ID); err != nil {
		return newsletter.NewDatabaseError(err)
	}

	r.logger.Debugw("subscription inserted", "id", model.ID, "email", model.Email)
	return nil
}

// Update persists mutations of an existing subscription. Only the
// columns the domain can change after creation are written; a full
// row write would clobber bookkeeping columns the entity does not
// carry.
func (r *SubscriptionRepository) Update(ctx context.Context, subscription *newsletter.Subscription) error {
	if subscription.ID() == 0 {
		return newsletter.NewDatabaseError(errors.New("cannot update subscription without ID"))
	}

	err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", subscription.ID()).
		Updates(map[string]interface{}{
			"activation_token":  subscription.ActivationToken(),
			"confirmed":         subscription.IsConfirmed(),
			"confirmation_date": subscription.ConfirmationDate(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update subscription", "id", subscription.ID(), "error", err)
		return newsletter.NewDatabaseError(err)
	}

	return nil
}

// MarkConfirmed persists only the confirmation columns of an
// already-confirmed subscription.
func (r *SubscriptionRepository) MarkConfirmed(ctx context.Context, subscription *newsletter.Subscription) error {
	if subscription.ID() == 0 {
		return newsletter.NewDatabaseError(errors.New("cannot confirm subscription without ID"))
	}
	if !subscription.IsConfirmed() {
		return newsletter.NewDatabaseError(errors.New("subscription is not confirmed"))
	}

	err := r.db.WithContext(ctx).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", subscription.ID()).
		Updates(map[string]interface{}{
			"confirmed":         true,
			"confirmation_date": subscription.ConfirmationDate(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to mark subscription confirmed", "id", subscription.ID(), "error", err)
		return newsletter.NewDatabaseError(err)
	}

	return nil
}

func (r *SubscriptionRepository) duplicateError(ctx context.Context, email string) error {
	existing, err := r.FindByEmail(ctx, email)
	if err == nil && existing != nil && existing.IsConfirmed() {
		return newsletter.ErrEmailAlreadyActivated
	}
	return newsletter.ErrEmailExists
}
