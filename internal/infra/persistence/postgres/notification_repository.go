// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"rentora/internal/domain/entity"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/repository"
	"rentora/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification in PENDING state.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrganizationNotFound.WrapMessage("invalid organization reference on notification")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByProviderMessageID retrieves a notification by its provider message ID.
func (repo *notificationRepository) FindByProviderMessageID(ctx context.Context, providerMessageID string) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("provider_message_id = ?", providerMessageID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by provider message ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// MarkSent transitions a PENDING notification to SENT. The WHERE guard keeps
// the update a no-op when the row already left PENDING.
func (repo *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID, providerName, providerMessageID string, sentAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":              string(entity.StatusSent),
			"provider_name":       providerName,
			"provider_message_id": providerMessageID,
			"sent_at":             sentAt,
			"error_message":       "",
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvalidStatusTransition
	}

	return nil
}

// RecordRetryFailure stores the retry counter and timestamp of a failed attempt.
func (repo *notificationRepository) RecordRetryFailure(ctx context.Context, id uuid.UUID, retryCount int, lastRetryAt time.Time, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"retry_count":   retryCount,
			"last_retry_at": lastRetryAt,
			"error_message": errorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record retry failure")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvalidStatusTransition
	}

	return nil
}

// MarkFailed transitions a notification to the terminal FAILED state.
func (repo *notificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status IN ?", id, []string{string(entity.StatusPending), string(entity.StatusSent)}).
		Updates(map[string]interface{}{
			"status":        string(entity.StatusFailed),
			"retry_count":   retryCount,
			"error_message": errorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification failed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvalidStatusTransition
	}

	return nil
}

// ReconcileDeliveryStatus applies an asynchronous provider delivery status.
// Only SENT rows are touched, making duplicate and out-of-order webhook
// events harmless.
func (repo *notificationRepository) ReconcileDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, at time.Time, failureReason string) error {
	if !entity.StatusSent.CanTransitionTo(status) {
		return repository.ErrInvalidStatusTransition
	}

	updates := map[string]interface{}{
		"status": string(status),
	}
	switch status {
	case entity.StatusDelivered:
		updates["delivered_at"] = at
	case entity.StatusFailed:
		updates["error_message"] = failureReason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusSent)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reconcile delivery status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvalidStatusTransition
	}

	return nil
}

// FindStalePending returns PENDING notifications created before the cutoff.
func (repo *notificationRepository) FindStalePending(ctx context.Context, before time.Time) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entity.StatusPending), before).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale pending notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// FindByOrganization retrieves notifications for an organization with pagination.
func (repo *notificationRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by organization")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:                data.ID,
		OrganizationID:    data.OrganizationID,
		RecipientKind:     entity.RecipientKind(data.RecipientKind),
		RecipientID:       data.RecipientID,
		RecipientPhone:    data.RecipientPhone,
		Kind:              entity.NotificationKind(data.Kind),
		Title:             data.Title,
		Body:              data.Body,
		Channel:           entity.NotificationChannel(data.Channel),
		Status:            entity.NotificationStatus(data.Status),
		ProviderName:      data.ProviderName,
		ProviderMessageID: data.ProviderMessageID,
		RetryCount:        data.RetryCount,
		LastRetryAt:       data.LastRetryAt,
		ErrorMessage:      data.ErrorMessage,
		RelatedPaymentID:  data.RelatedPaymentID,
		RelatedContractID: data.RelatedContractID,
		CreatedAt:         data.CreatedAt,
		SentAt:            data.SentAt,
		DeliveredAt:       data.DeliveredAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:                data.ID,
		OrganizationID:    data.OrganizationID,
		RecipientKind:     string(data.RecipientKind),
		RecipientID:       data.RecipientID,
		RecipientPhone:    data.RecipientPhone,
		Kind:              string(data.Kind),
		Title:             data.Title,
		Body:              data.Body,
		Channel:           string(data.Channel),
		Status:            string(data.Status),
		ProviderName:      data.ProviderName,
		ProviderMessageID: data.ProviderMessageID,
		RetryCount:        data.RetryCount,
		LastRetryAt:       data.LastRetryAt,
		ErrorMessage:      data.ErrorMessage,
		RelatedPaymentID:  data.RelatedPaymentID,
		RelatedContractID: data.RelatedContractID,
		CreatedAt:         data.CreatedAt,
		SentAt:            data.SentAt,
		DeliveredAt:       data.DeliveredAt,
	}
}
