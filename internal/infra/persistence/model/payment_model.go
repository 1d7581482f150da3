package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentReminderViewModel is the GORM-specific struct backing the read-only
// payment view the eligibility filter selects from. It is populated through a
// join of payments, contracts and tenants; the engine never writes to it.
type PaymentReminderViewModel struct {
	ID              uuid.UUID `gorm:"column:id"`
	OrganizationID  uuid.UUID `gorm:"column:organization_id"`
	ContractID      uuid.UUID `gorm:"column:contract_id"`
	DueDate         time.Time `gorm:"column:due_date"`
	Status          string    `gorm:"column:status"`
	PaymentType     string    `gorm:"column:payment_type"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	TenantID        uuid.UUID `gorm:"column:tenant_id"`
	TenantName      string    `gorm:"column:tenant_name"`
	TenantPhone     string    `gorm:"column:tenant_phone"`
	PropertyAddress string    `gorm:"column:property_address"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentReminderViewModel) TableName() string {
	return "payments"
}
