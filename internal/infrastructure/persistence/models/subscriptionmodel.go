package models

import (
	"time"
)

// SubscriptionModel is the database persistence model for newsletter
// subscriptions, the anti-corruption layer between domain and database.
// The composite unique index on (email, list) is what turns the
// check-then-insert race between concurrent registrations into a
// well-defined duplicate-key error.
type SubscriptionModel struct {
	ID               uint   `gorm:"primarykey"`
	Email            string `gorm:"not null;size:255;uniqueIndex:idx_email_list"`
	List             string `gorm:"not null;size:100;uniqueIndex:idx_email_list"`
	Locale           string `gorm:"not null;size:35;default:en"`
	ConfirmationCode string `gorm:"not null;size:64"`
	ActivationToken  string `gorm:"size:64"`
	Confirmed        bool   `gorm:"not null;default:false"`
	CreationDate     time.Time
	ConfirmationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
