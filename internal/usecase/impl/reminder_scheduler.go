package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"rentora/config"
	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/usecase"
	"rentora/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	organizationRepo repository.OrganizationRepository
	notificationRepo repository.NotificationRepository
	eligibility      *EligibilityFilter
	selector         *ProviderSelector
	executor         *DeliveryExecutor
	logger           *slog.Logger

	orgConcurrency    int
	stalePendingAfter time.Duration
}

// NewReminderUsecase creates the reminder batch orchestrator.
func NewReminderUsecase(
	organizationRepo repository.OrganizationRepository,
	notificationRepo repository.NotificationRepository,
	eligibility *EligibilityFilter,
	selector *ProviderSelector,
	executor *DeliveryExecutor,
	logger *slog.Logger,
	cfg *config.ReminderConfig,
) usecase.ReminderUsecase {
	return &reminderService{
		organizationRepo:  organizationRepo,
		notificationRepo:  notificationRepo,
		eligibility:       eligibility,
		selector:          selector,
		executor:          executor,
		logger:            logger,
		orgConcurrency:    cfg.OrgConcurrency,
		stalePendingAfter: cfg.StalePendingAfter,
	}
}

// RunReminderCycle executes one reminder batch. Stale PENDING rows left over
// from an interrupted run are re-dispatched first, then every
// notification-enabled organization is processed concurrently with bounded
// parallelism. A failure inside one organization is logged and counted, never
// propagated to the others.
func (s *reminderService) RunReminderCycle(ctx context.Context, now time.Time) (*usecase.RunSummary, error) {
	summary := &usecase.RunSummary{StartedAt: now}
	var mu sync.Mutex

	summary.StaleResumed = s.resumeStalePending(ctx, now)

	organizations, err := s.organizationRepo.FindNotificationEnabled(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification-enabled organizations")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.orgConcurrency)

	for _, org := range organizations {
		group.Go(func() error {
			orgSummary := s.processOrganizationSafe(groupCtx, org, now)

			mu.Lock()
			summary.OrganizationsProcessed += orgSummary.OrganizationsProcessed
			summary.OrganizationsSkipped += orgSummary.OrganizationsSkipped
			summary.OrganizationsFailed += orgSummary.OrganizationsFailed
			summary.RemindersSent += orgSummary.RemindersSent
			summary.RemindersFailed += orgSummary.RemindersFailed
			summary.QuotaSkipped += orgSummary.QuotaSkipped
			summary.InvalidPhones += orgSummary.InvalidPhones
			summary.DigestsSent += orgSummary.DigestsSent
			mu.Unlock()

			return nil
		})
	}

	// Workers never return errors, so this only waits.
	_ = group.Wait()

	summary.FinishedAt = time.Now()
	s.logger.Info("reminder cycle finished",
		slog.Int("organizations_processed", summary.OrganizationsProcessed),
		slog.Int("organizations_skipped", summary.OrganizationsSkipped),
		slog.Int("organizations_failed", summary.OrganizationsFailed),
		slog.Int("reminders_sent", summary.RemindersSent),
		slog.Int("reminders_failed", summary.RemindersFailed),
		slog.Int("stale_resumed", summary.StaleResumed))

	return summary, nil
}

// processOrganizationSafe wraps processOrganization with a recover boundary
// so a panic in one organization cannot take down the run.
func (s *reminderService) processOrganizationSafe(ctx context.Context, org *entity.Organization, now time.Time) (result usecase.RunSummary) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while processing organization",
				slog.String("organization_id", org.ID.String()),
				slog.Any("panic", r))
			result.OrganizationsFailed++
		}
	}()

	if err := s.processOrganization(ctx, org, now, &result); err != nil {
		s.logger.Error("organization reminder processing failed",
			slog.String("organization_id", org.ID.String()),
			slog.Any("error", err))
		result.OrganizationsFailed++
	}

	return result
}

func (s *reminderService) processOrganization(ctx context.Context, org *entity.Organization, now time.Time, result *usecase.RunSummary) error {
	setting := org.Notification

	if setting.QuotaRemaining() == 0 {
		s.logger.Info("organization quota already exhausted, skipping",
			slog.String("organization_id", org.ID.String()),
			slog.Int("monthly_limit", setting.MonthlyLimit))
		result.OrganizationsSkipped++

		return nil
	}

	eligible, err := s.eligibility.Collect(ctx, org.ID, now, setting.PlanCode)
	if err != nil {
		return err
	}

	quota := newQuotaTracker(setting)
	var digest DigestStats

	// Payments run sequentially inside one organization so quota
	// reservation stays deterministic in bucket order.
	for _, item := range eligible {
		if ctx.Err() != nil {
			break
		}

		phone, err := util.NormalizePhone(item.Payment.TenantPhone)
		if err != nil {
			s.logger.Warn("tenant phone rejected",
				slog.String("organization_id", org.ID.String()),
				slog.String("payment_id", item.Payment.ID.String()),
				slog.Any("error", err))
			result.InvalidPhones++

			continue
		}

		legs, resolveErrs := s.selector.Resolve(setting.Channel, setting.PreferredSMSProvider)
		for channel, resolveErr := range resolveErrs {
			s.logger.Warn("no provider for channel",
				slog.String("organization_id", org.ID.String()),
				slog.String("channel", string(channel)),
				slog.Any("error", resolveErr))
			result.RemindersFailed++
		}
		if len(legs) == 0 {
			digest.Record(item.Payment, item.DaysUntilDue, false)

			continue
		}

		if !quota.TryReserve(len(legs)) {
			s.logger.Info("monthly quota exhausted mid-run",
				slog.String("organization_id", org.ID.String()),
				slog.Int("payments_remaining", remainingAfter(eligible, item)))
			result.QuotaSkipped += remainingAfter(eligible, item) + 1

			break
		}

		title, body := ComposeReminder(item.Payment, item.DaysUntilDue)
		sentAny := false

		for _, leg := range legs {
			notification := s.buildReminderNotification(org, item.Payment, leg.Channel, phone, title, body)
			if err := s.executor.Dispatch(ctx, notification, leg.Provider, true); err != nil {
				quota.Release(1)
				result.RemindersFailed++

				continue
			}
			sentAny = true
			result.RemindersSent++
		}

		digest.Record(item.Payment, item.DaysUntilDue, sentAny)
	}

	if setting.AdminDigestEnabled && digest.RemindersSent > 0 {
		if s.sendAdminDigest(ctx, org, quota, digest) {
			result.DigestsSent++
		}
	}

	result.OrganizationsProcessed++

	return nil
}

// sendAdminDigest sends the consolidated owner summary. When the channel is
// BOTH the digest goes out over WhatsApp only.
func (s *reminderService) sendAdminDigest(ctx context.Context, org *entity.Organization, quota *quotaTracker, digest DigestStats) bool {
	channel := org.Notification.Channel
	if channel == entity.ChannelBoth {
		channel = entity.ChannelWhatsApp
	}

	phone, err := util.NormalizePhone(org.OwnerPhone)
	if err != nil {
		s.logger.Warn("owner phone rejected, digest skipped",
			slog.String("organization_id", org.ID.String()),
			slog.Any("error", err))

		return false
	}

	legs, resolveErrs := s.selector.Resolve(channel, org.Notification.PreferredSMSProvider)
	if len(legs) == 0 {
		s.logger.Warn("no provider for digest",
			slog.String("organization_id", org.ID.String()),
			slog.Any("errors", fmt.Sprint(resolveErrs)))

		return false
	}

	if !quota.TryReserve(1) {
		s.logger.Info("digest skipped, monthly quota exhausted",
			slog.String("organization_id", org.ID.String()))

		return false
	}

	title, body := ComposeDigest(org.Name, digest)
	notification := &entity.Notification{
		OrganizationID: org.ID,
		RecipientKind:  entity.RecipientOwner,
		RecipientID:    org.OwnerID,
		RecipientPhone: phone,
		Kind:           entity.KindAdminDigest,
		Title:          title,
		Body:           body,
		Channel:        legs[0].Channel,
		Status:         entity.StatusPending,
	}

	if err := s.executor.Dispatch(ctx, notification, legs[0].Provider, true); err != nil {
		quota.Release(1)
		s.logger.Warn("digest delivery failed",
			slog.String("organization_id", org.ID.String()),
			slog.Any("error", err))

		return false
	}

	return true
}

// resumeStalePending re-dispatches PENDING notifications older than the
// configured cutoff: rows a previous run created but never drove to a
// terminal state. Their quota was never committed, so the resumed dispatch
// counts normally.
func (s *reminderService) resumeStalePending(ctx context.Context, now time.Time) int {
	stale, err := s.notificationRepo.FindStalePending(ctx, now.Add(-s.stalePendingAfter))
	if err != nil {
		s.logger.Error("failed to load stale pending notifications", slog.Any("error", err))

		return 0
	}

	resumed := 0
	for _, notification := range stale {
		org, err := s.organizationRepo.FindByID(ctx, notification.OrganizationID)
		if err != nil {
			s.logger.Warn("stale notification without organization",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err))

			continue
		}

		legs, _ := s.selector.Resolve(notification.Channel, org.Notification.PreferredSMSProvider)
		if len(legs) == 0 {
			continue
		}

		if err := s.executor.Dispatch(ctx, notification, legs[0].Provider, true); err != nil {
			s.logger.Warn("stale notification re-dispatch failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err))

			continue
		}
		resumed++
	}

	return resumed
}

func (s *reminderService) buildReminderNotification(org *entity.Organization, payment *entity.Payment, channel entity.NotificationChannel, phone, title, body string) *entity.Notification {
	paymentID := payment.ID
	contractID := payment.ContractID

	return &entity.Notification{
		OrganizationID:    org.ID,
		RecipientKind:     entity.RecipientTenant,
		RecipientID:       payment.TenantID,
		RecipientPhone:    phone,
		Kind:              entity.KindPaymentReminder,
		Title:             title,
		Body:              body,
		Channel:           channel,
		Status:            entity.StatusPending,
		RelatedPaymentID:  &paymentID,
		RelatedContractID: &contractID,
	}
}

func remainingAfter(eligible []EligiblePayment, current EligiblePayment) int {
	for i, item := range eligible {
		if item.Payment.ID == current.Payment.ID && item.DaysUntilDue == current.DaysUntilDue {
			return len(eligible) - i - 1
		}
	}

	return 0
}
