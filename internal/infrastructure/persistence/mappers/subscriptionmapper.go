package mappers

import (
	"fmt"

	"inkletter/internal/domain/newsletter"
	vo "inkletter/internal/domain/newsletter/valueobjects"
	"inkletter/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and
// persistence models
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*newsletter.Subscription, error)
	ToModel(entity *newsletter.Subscription) (*models.SubscriptionModel, error)
}

type subscriptionMapper struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*newsletter.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	locale, err := vo.NewLocale(model.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create locale value object: %w", err)
	}

	entity, err := newsletter.ReconstructSubscription(
		model.ID,
		email,
		model.List,
		locale,
		model.ConfirmationCode,
		model.ActivationToken,
		model.Confirmed,
		model.CreationDate,
		model.ConfirmationDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *newsletter.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:               entity.ID(),
		Email:            entity.Email().String(),
		List:             entity.List(),
		Locale:           entity.Locale().String(),
		ConfirmationCode: entity.ConfirmationCode(),
		ActivationToken:  entity.ActivationToken(),
		Confirmed:        entity.IsConfirmed(),
		CreationDate:     entity.CreationDate(),
		ConfirmationDate: entity.ConfirmationDate(),
	}, nil
}
