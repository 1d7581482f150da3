package impl

import (
	"context"
	"log/slog"
	"time"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeliveryExecutor performs the actual send attempt for one notification,
// driving it through the PENDING -> SENT / FAILED state machine with bounded
// retries and linear backoff.
type DeliveryExecutor struct {
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	logger           *slog.Logger

	maxRetries int
	baseDelay  time.Duration
}

// NewDeliveryExecutor creates a delivery executor.
func NewDeliveryExecutor(
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
	maxRetries int,
	baseDelay time.Duration,
) *DeliveryExecutor {
	return &DeliveryExecutor{
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
		maxRetries:       maxRetries,
		baseDelay:        baseDelay,
	}
}

// Dispatch persists the notification as PENDING (unless it already exists,
// the resume path for swept stale rows) and attempts delivery up to
// maxRetries times. On success the SENT transition and the organization's
// quota increment commit in one transaction; countQuota is false for
// messages that never count against the monthly limit (admin digests on
// resumed rows keep their original accounting).
//
// Re-dispatching a notification that already reached SENT or FAILED is a
// no-op.
func (e *DeliveryExecutor) Dispatch(ctx context.Context, notification *entity.Notification, provider service.MessageProvider, countQuota bool) error {
	if notification.Status == "" {
		notification.Status = entity.StatusPending
	}
	if notification.Status != entity.StatusPending {
		return nil
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
		notification.CreatedAt = time.Now()
		if err := e.notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to persist pending notification")
		}
	}

	retryCount := notification.RetryCount
	for {
		providerMessageID, sendErr := e.send(ctx, provider, notification.Channel, notification.RecipientPhone, notification.Body)
		if sendErr == nil {
			return e.commitSent(ctx, notification, provider.ProviderName(), providerMessageID, countQuota)
		}

		retryCount++
		e.logger.Warn("notification send attempt failed",
			slog.String("notification_id", notification.ID.String()),
			slog.String("provider", provider.ProviderName()),
			slog.Int("retry_count", retryCount),
			slog.Any("error", sendErr))

		if retryCount >= e.maxRetries {
			notification.RetryCount = retryCount
			notification.Status = entity.StatusFailed
			notification.ErrorMessage = sendErr.Error()
			if err := e.notificationRepo.MarkFailed(ctx, notification.ID, retryCount, sendErr.Error()); err != nil {
				return errors.Wrap(err, "failed to mark notification failed")
			}

			return errors.Wrap(sendErr, "notification delivery failed after retries")
		}

		now := time.Now()
		notification.RetryCount = retryCount
		notification.LastRetryAt = &now
		if err := e.notificationRepo.RecordRetryFailure(ctx, notification.ID, retryCount, now, sendErr.Error()); err != nil {
			return errors.Wrap(err, "failed to record retry attempt")
		}

		if err := e.wait(ctx, e.baseDelay*time.Duration(retryCount)); err != nil {
			return err
		}
	}
}

// SendDirect performs a one-shot send with no persistence, retries or quota
// accounting. The test-message endpoint uses it.
func (e *DeliveryExecutor) SendDirect(ctx context.Context, provider service.MessageProvider, channel entity.NotificationChannel, phone, body string) (string, error) {
	return e.send(ctx, provider, channel, phone, body)
}

func (e *DeliveryExecutor) send(ctx context.Context, provider service.MessageProvider, channel entity.NotificationChannel, phone, body string) (string, error) {
	switch channel {
	case entity.ChannelWhatsApp:
		return provider.SendWhatsApp(ctx, phone, body)
	default:
		return provider.SendSMS(ctx, phone, body)
	}
}

// commitSent marks the notification SENT and applies the quota increment in
// one transaction, so the counter can never drift from the persisted record.
func (e *DeliveryExecutor) commitSent(ctx context.Context, notification *entity.Notification, providerName, providerMessageID string, countQuota bool) error {
	sentAt := time.Now()

	err := e.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewNotificationRepository().MarkSent(ctx, notification.ID, providerName, providerMessageID, sentAt); err != nil {
			return err
		}
		if countQuota {
			return repos.NewOrganizationRepository().IncrementSentThisMonth(ctx, notification.OrganizationID, 1)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to commit sent notification")
	}

	notification.Status = entity.StatusSent
	notification.ProviderName = providerName
	notification.ProviderMessageID = providerMessageID
	notification.SentAt = &sentAt

	return nil
}

// wait sleeps for the backoff delay without outliving the run context. The
// caller runs inside its own organization goroutine, so the wait never stalls
// other organizations.
func (e *DeliveryExecutor) wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
