package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one message dispatched to a single recipient over a single channel.
type NotificationModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizationID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientKind     string     `gorm:"type:text;not null"`
	RecipientID       uuid.UUID  `gorm:"type:uuid;not null"`
	RecipientPhone    string     `gorm:"type:text;not null"`
	Kind              string     `gorm:"type:text;not null;default:'PAYMENT_REMINDER'"`
	Title             string     `gorm:"type:text;not null"`
	Body              string     `gorm:"type:text;not null"`
	Channel           string     `gorm:"type:text;not null"`
	Status            string     `gorm:"type:text;not null;default:'PENDING';index"`
	ProviderName      string     `gorm:"type:text"`
	ProviderMessageID string     `gorm:"type:text;index"`
	RetryCount        int        `gorm:"not null;default:0"`
	LastRetryAt       *time.Time `gorm:""`
	ErrorMessage      string     `gorm:"type:text"`
	RelatedPaymentID  *uuid.UUID `gorm:"type:uuid;index"`
	RelatedContractID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	SentAt            *time.Time
	DeliveredAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
