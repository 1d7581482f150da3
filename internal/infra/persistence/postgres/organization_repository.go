package postgres

import (
	"context"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// organizationRepository implements the repository.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{
		db: db,
	}
}

// FindByID retrieves an organization with its notification settings.
func (repo *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by ID")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindNotificationEnabled returns all organizations with reminders enabled.
func (repo *organizationRepository) FindNotificationEnabled(ctx context.Context) ([]*entity.Organization, error) {
	var orgModels []*model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("notifications_enabled = ?", true).
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification-enabled organizations")
	}

	orgs := make([]*entity.Organization, 0, len(orgModels))
	for _, orgM := range orgModels {
		orgs = append(orgs, toOrganizationDomain(orgM))
	}

	return orgs, nil
}

// IncrementSentThisMonth adds delta to the monthly sent counter in a single
// guarded UPDATE. Concurrent increments stay additive; the guard keeps
// sent_this_month <= monthly_limit invariant at all times.
func (repo *organizationRepository) IncrementSentThisMonth(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ? AND sent_this_month + ? <= monthly_limit", id, delta).
		Update("sent_this_month", gorm.Expr("sent_this_month + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment sent counter")
	}

	if result.RowsAffected == 0 {
		// Either the organization is gone or the guard failed. Distinguish so
		// quota exhaustion is never reported for a missing row.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrganizationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check organization existence")
		}
		if count == 0 {
			return repository.ErrOrganizationNotFound
		}

		return repository.ErrQuotaExhausted
	}

	return nil
}

// --- Mapper Functions ---

// toOrganizationDomain converts a GORM OrganizationModel to a domain Organization entity.
func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:            data.ID,
		Name:          data.Name,
		OwnerID:       data.OwnerID,
		OwnerName:     data.OwnerName,
		OwnerPhone:    data.OwnerPhone,
		MaxProperties: data.MaxProperties,
		Notification: entity.NotificationSetting{
			Enabled:              data.NotificationsEnabled,
			Channel:              entity.NotificationChannel(data.NotificationChannel),
			AdminDigestEnabled:   data.AdminDigestEnabled,
			MonthlyLimit:         data.MonthlyLimit,
			SentThisMonth:        data.SentThisMonth,
			LastCounterReset:     data.LastCounterReset,
			PlanCode:             entity.PlanCode(data.PlanCode),
			PreferredSMSProvider: data.PreferredSMSProvider,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
