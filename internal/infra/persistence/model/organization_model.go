package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel is the GORM-specific struct for the 'organizations' table.
// Only the columns the reminder engine reads (plus the quota counter it owns)
// are mapped here; entity CRUD lives in another service.
type OrganizationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:text;not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null"`
	OwnerName     string    `gorm:"type:text"`
	OwnerPhone    string    `gorm:"type:text"`
	MaxProperties int       `gorm:"not null;default:0"`

	NotificationsEnabled bool      `gorm:"not null;default:false;index"`
	NotificationChannel  string    `gorm:"type:text;not null;default:'SMS'"`
	AdminDigestEnabled   bool      `gorm:"not null;default:false"`
	MonthlyLimit         int       `gorm:"not null;default:0"`
	SentThisMonth        int       `gorm:"not null;default:0"`
	LastCounterReset     time.Time `gorm:""`
	PlanCode             string    `gorm:"type:text;not null;default:'BASICA'"`
	PreferredSMSProvider string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}
