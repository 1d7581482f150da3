package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus mirrors the status vocabulary of the payments subsystem.
type PaymentStatus string

const (
	PaymentPendiente PaymentStatus = "PENDIENTE"
	PaymentPagado    PaymentStatus = "PAGADO"
	PaymentAtrasado  PaymentStatus = "ATRASADO"
	PaymentParcial   PaymentStatus = "PARCIAL"
)

// PaymentType mirrors the payment-type vocabulary of the payments subsystem.
type PaymentType string

const (
	PaymentTypeRenta         PaymentType = "RENTA"
	PaymentTypeMantenimiento PaymentType = "MANTENIMIENTO"
	PaymentTypeDeposito      PaymentType = "DEPOSITO"
	// PaymentTypeAnticipo marks advance payments, which never trigger reminders.
	PaymentTypeAnticipo PaymentType = "ANTICIPO"
)

// Payment is a read model over the payments subsystem: one due payment joined
// with the contract and primary tenant contact data the reminder engine needs.
// The engine never mutates payments.
type Payment struct {
	ID              uuid.UUID     `json:"id"`
	OrganizationID  uuid.UUID     `json:"organization_id"`
	ContractID      uuid.UUID     `json:"contract_id"`
	DueDate         time.Time     `json:"due_date"`
	Status          PaymentStatus `json:"status"`
	Type            PaymentType   `json:"type"`
	TotalAmount     float64       `json:"total_amount"`
	TenantID        uuid.UUID     `json:"tenant_id"`
	TenantName      string        `json:"tenant_name"`
	TenantPhone     string        `json:"tenant_phone"`
	PropertyAddress string        `json:"property_address"`
}

// IsRemindable reports whether the payment may receive reminders at all:
// only unsettled, non-advance payments qualify.
func (p *Payment) IsRemindable() bool {
	if p.Type == PaymentTypeAnticipo {
		return false
	}

	return p.Status == PaymentPendiente || p.Status == PaymentAtrasado
}
