package impl

import (
	"context"
	"testing"
	"time"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"
	"rentora/internal/domain/service"
	mockRepo "rentora/internal/mocks/repository"
	mockSvc "rentora/internal/mocks/service"
	"rentora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockMessageProvider,
	*mockSvc.MockMessageProvider,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	organizationRepo := mockRepo.NewMockOrganizationRepository(t)

	smsProvider := mockSvc.NewMockMessageProvider(t)
	smsProvider.EXPECT().IsConfigured().Return(true).Maybe()
	smsProvider.EXPECT().ProviderName().Return("sns").Maybe()

	whatsappProvider := mockSvc.NewMockMessageProvider(t)
	whatsappProvider.EXPECT().IsConfigured().Return(true).Maybe()
	whatsappProvider.EXPECT().ProviderName().Return("whatsapp-cloud").Maybe()

	selector := NewProviderSelector(
		[]service.MessageProvider{smsProvider},
		[]service.MessageProvider{whatsappProvider},
	)
	txManager := &fakeTxManager{
		notificationRepo: notificationRepo,
		organizationRepo: organizationRepo,
	}
	executor := NewDeliveryExecutor(notificationRepo, txManager, discardLogger(), 1, time.Millisecond)

	svc := NewNotificationUsecase(notificationRepo, selector, executor, discardLogger())

	return svc, notificationRepo, smsProvider, whatsappProvider
}

func TestSendTestMessage_SMS(t *testing.T) {
	svc, _, smsProvider, _ := createTestNotificationService(t)
	ctx := context.Background()

	smsProvider.EXPECT().SendSMS(ctx, "+525512345678", mock.Anything).Return("sns-test-1", nil).Once()

	results, err := svc.SendTestMessage(ctx, "55 1234 5678", entity.ChannelSMS)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.ChannelSMS, results[0].Channel)
	assert.Equal(t, "sns", results[0].Provider)
	assert.Equal(t, "sns-test-1", results[0].ProviderMessageID)
	assert.Empty(t, results[0].Error)
}

func TestSendTestMessage_BothChannelsIndependentOutcomes(t *testing.T) {
	svc, _, smsProvider, whatsappProvider := createTestNotificationService(t)
	ctx := context.Background()

	smsProvider.EXPECT().SendSMS(ctx, "+525512345678", mock.Anything).Return("", errors.New("carrier rejected")).Once()
	whatsappProvider.EXPECT().SendWhatsApp(ctx, "+525512345678", mock.Anything).Return("wamid.test", nil).Once()

	results, err := svc.SendTestMessage(ctx, "5512345678", entity.ChannelBoth)

	require.NoError(t, err)
	require.Len(t, results, 2)

	byChannel := make(map[entity.NotificationChannel]usecase.TestSendResult, 2)
	for _, r := range results {
		byChannel[r.Channel] = r
	}

	assert.NotEmpty(t, byChannel[entity.ChannelSMS].Error)
	assert.Equal(t, "wamid.test", byChannel[entity.ChannelWhatsApp].ProviderMessageID)
	assert.Empty(t, byChannel[entity.ChannelWhatsApp].Error)
}

func TestSendTestMessage_InvalidPhone(t *testing.T) {
	svc, _, _, _ := createTestNotificationService(t)

	_, err := svc.SendTestMessage(context.Background(), "abc", entity.ChannelSMS)
	require.Error(t, err)
}

func TestReconcileDeliveryStatus_MarksDelivered(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	id := uuid.New()
	occurredAt := time.Now()
	notificationRepo.EXPECT().FindByProviderMessageID(ctx, "sns-1").
		Return(&entity.Notification{ID: id, Status: entity.StatusSent}, nil).Once()
	notificationRepo.EXPECT().ReconcileDeliveryStatus(ctx, id, entity.StatusDelivered, occurredAt, "").
		Return(nil).Once()

	err := svc.ReconcileDeliveryStatus(ctx, usecase.DeliveryEvent{
		ProviderMessageID: "sns-1",
		Status:            entity.StatusDelivered,
		OccurredAt:        occurredAt,
	})

	require.NoError(t, err)
}

func TestReconcileDeliveryStatus_UnknownMessageIDIsIgnored(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().FindByProviderMessageID(ctx, "ghost").
		Return(nil, repository.ErrNotificationNotFound).Once()

	err := svc.ReconcileDeliveryStatus(ctx, usecase.DeliveryEvent{
		ProviderMessageID: "ghost",
		Status:            entity.StatusDelivered,
		OccurredAt:        time.Now(),
	})

	require.NoError(t, err)
}

func TestReconcileDeliveryStatus_TerminalStateIsIgnored(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().FindByProviderMessageID(ctx, "sns-1").
		Return(&entity.Notification{ID: uuid.New(), Status: entity.StatusDelivered}, nil).Once()

	// No reconcile call follows: the event is acknowledged and dropped.
	err := svc.ReconcileDeliveryStatus(ctx, usecase.DeliveryEvent{
		ProviderMessageID: "sns-1",
		Status:            entity.StatusFailed,
		OccurredAt:        time.Now(),
	})

	require.NoError(t, err)
}

func TestReconcileDeliveryStatus_RacedTransitionIsIgnored(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()

	id := uuid.New()
	notificationRepo.EXPECT().FindByProviderMessageID(ctx, "sns-1").
		Return(&entity.Notification{ID: id, Status: entity.StatusSent}, nil).Once()
	notificationRepo.EXPECT().ReconcileDeliveryStatus(ctx, id, entity.StatusDelivered, mock.Anything, "").
		Return(repository.ErrInvalidStatusTransition).Once()

	err := svc.ReconcileDeliveryStatus(ctx, usecase.DeliveryEvent{
		ProviderMessageID: "sns-1",
		Status:            entity.StatusDelivered,
		OccurredAt:        time.Now(),
	})

	require.NoError(t, err)
}

func TestGetOrganizationNotifications_AppliesPaginationDefaults(t *testing.T) {
	svc, notificationRepo, _, _ := createTestNotificationService(t)
	ctx := context.Background()
	orgID := uuid.New()

	notificationRepo.EXPECT().FindByOrganization(ctx, orgID, 20, 0).
		Return([]*entity.Notification{}, nil).Once()

	_, err := svc.GetOrganizationNotifications(ctx, orgID, 0, -5)
	require.NoError(t, err)

	notificationRepo.EXPECT().FindByOrganization(ctx, orgID, 100, 10).
		Return([]*entity.Notification{}, nil).Once()

	_, err = svc.GetOrganizationNotifications(ctx, orgID, 500, 10)
	require.NoError(t, err)
}
