package impl

import (
	"context"
	"log/slog"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/usecase"
	"rentora/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	testMessageBody = "Mensaje de prueba del sistema de notificaciones. Si recibiste este mensaje, la configuración es correcta."

	defaultListLimit = 20
	maxListLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	selector         *ProviderSelector
	executor         *DeliveryExecutor
	logger           *slog.Logger
}

// NewNotificationUsecase creates the synchronous notification service: test
// sends, webhook reconciliation and record listing.
func NewNotificationUsecase(
	notificationRepo repository.NotificationRepository,
	selector *ProviderSelector,
	executor *DeliveryExecutor,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		selector:         selector,
		executor:         executor,
		logger:           logger,
	}
}

// SendTestMessage sends one fixed test message per resolved leg. No quota, no
// persistence; each leg reports its own outcome.
func (s *notificationService) SendTestMessage(ctx context.Context, rawPhone string, channel entity.NotificationChannel) ([]usecase.TestSendResult, error) {
	phone, err := util.NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	legs, resolveErrs := s.selector.Resolve(channel, "")

	results := make([]usecase.TestSendResult, 0, len(legs)+len(resolveErrs))
	for legChannel, resolveErr := range resolveErrs {
		results = append(results, usecase.TestSendResult{
			Channel: legChannel,
			Error:   resolveErr.Error(),
		})
	}

	for _, leg := range legs {
		result := usecase.TestSendResult{
			Channel:  leg.Channel,
			Provider: leg.Provider.ProviderName(),
		}

		providerMessageID, sendErr := s.executor.SendDirect(ctx, leg.Provider, leg.Channel, phone, testMessageBody)
		if sendErr != nil {
			result.Error = sendErr.Error()
		} else {
			result.ProviderMessageID = providerMessageID
		}

		results = append(results, result)
	}

	return results, nil
}

// ReconcileDeliveryStatus applies a provider delivery event to the matching
// notification. Unknown message IDs and out-of-order events are ignored so
// webhook retries stay idempotent.
func (s *notificationService) ReconcileDeliveryStatus(ctx context.Context, event usecase.DeliveryEvent) error {
	notification, err := s.notificationRepo.FindByProviderMessageID(ctx, event.ProviderMessageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			s.logger.Debug("delivery event for unknown provider message id",
				slog.String("provider_message_id", event.ProviderMessageID))

			return nil
		}

		return errors.Wrap(err, "failed to look up notification for delivery event")
	}

	if notification.Status.IsTerminal() {
		return nil
	}

	err = s.notificationRepo.ReconcileDeliveryStatus(ctx, notification.ID, event.Status, event.OccurredAt, event.FailureReason)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidStatusTransition) {
			// Raced with another writer or the event arrived out of order.
			return nil
		}

		return errors.Wrap(err, "failed to reconcile delivery status")
	}

	s.logger.Info("notification delivery status reconciled",
		slog.String("notification_id", notification.ID.String()),
		slog.String("status", string(event.Status)))

	return nil
}

// GetOrganizationNotifications lists an organization's notification records,
// newest first.
func (s *notificationService) GetOrganizationNotifications(ctx context.Context, organizationID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.notificationRepo.FindByOrganization(ctx, organizationID, limit, offset)
}
