package postgres

import (
	"context"
	"time"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface as a
// read-only view over the payments subsystem's tables.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// FindRemindableByDueDate returns an organization's payments due on the given
// calendar date, joined with contract and primary tenant contact data.
// Settled and advance-type payments never qualify.
func (repo *paymentRepository) FindRemindableByDueDate(ctx context.Context, organizationID uuid.UUID, dueDate time.Time, statuses []entity.PaymentStatus) ([]*entity.Payment, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	day := dueDate.Format("2006-01-02")

	var rows []*model.PaymentReminderViewModel
	if err := repo.db.WithContext(ctx).
		Table("payments").
		Select(`payments.id, payments.organization_id, payments.contract_id,
			payments.due_date, payments.status, payments.payment_type, payments.total_amount,
			tenants.id AS tenant_id, tenants.full_name AS tenant_name, tenants.phone AS tenant_phone,
			properties.address AS property_address`).
		Joins("JOIN contracts ON contracts.id = payments.contract_id").
		Joins("JOIN tenants ON tenants.id = contracts.primary_tenant_id").
		Joins("JOIN properties ON properties.id = contracts.property_id").
		Where("payments.organization_id = ?", organizationID).
		Where("payments.due_date::date = ?", day).
		Where("payments.status IN ?", statusStrings).
		Where("payments.payment_type <> ?", string(entity.PaymentTypeAnticipo)).
		Order("payments.due_date ASC, payments.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find remindable payments")
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, toPaymentDomain(row))
	}

	return payments, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a payment view row to a domain Payment entity.
func toPaymentDomain(data *model.PaymentReminderViewModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:              data.ID,
		OrganizationID:  data.OrganizationID,
		ContractID:      data.ContractID,
		DueDate:         data.DueDate,
		Status:          entity.PaymentStatus(data.Status),
		Type:            entity.PaymentType(data.PaymentType),
		TotalAmount:     data.TotalAmount,
		TenantID:        data.TenantID,
		TenantName:      data.TenantName,
		TenantPhone:     data.TenantPhone,
		PropertyAddress: data.PropertyAddress,
	}
}
