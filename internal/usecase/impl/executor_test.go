package impl

import (
	"context"
	"testing"
	"time"

	"rentora/internal/domain/entity"
	mockRepo "rentora/internal/mocks/repository"
	mockSvc "rentora/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestExecutor(t *testing.T, maxRetries int) (
	*DeliveryExecutor,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockOrganizationRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	organizationRepo := mockRepo.NewMockOrganizationRepository(t)
	txManager := &fakeTxManager{
		notificationRepo: notificationRepo,
		organizationRepo: organizationRepo,
	}

	executor := NewDeliveryExecutor(notificationRepo, txManager, discardLogger(), maxRetries, time.Millisecond)

	return executor, notificationRepo, organizationRepo
}

func pendingNotification(orgID uuid.UUID) *entity.Notification {
	return &entity.Notification{
		OrganizationID: orgID,
		RecipientKind:  entity.RecipientTenant,
		RecipientID:    uuid.New(),
		RecipientPhone: "+525512345678",
		Kind:           entity.KindPaymentReminder,
		Title:          "Recordatorio de pago",
		Body:           "cuerpo",
		Channel:        entity.ChannelSMS,
		Status:         entity.StatusPending,
	}
}

func TestDeliveryExecutor_FirstAttemptSucceeds(t *testing.T) {
	executor, notificationRepo, organizationRepo := createTestExecutor(t, 3)
	ctx := context.Background()
	orgID := uuid.New()
	notification := pendingNotification(orgID)

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("sns").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("sns-msg-1", nil).Once()

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().MarkSent(ctx, mock.Anything, "sns", "sns-msg-1", mock.Anything).Return(nil).Once()
	organizationRepo.EXPECT().IncrementSentThisMonth(ctx, orgID, 1).Return(nil).Once()

	err := executor.Dispatch(ctx, notification, provider, true)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, notification.Status)
	assert.Equal(t, "sns-msg-1", notification.ProviderMessageID)
	assert.NotNil(t, notification.SentAt)
	assert.NotEqual(t, uuid.Nil, notification.ID)
}

func TestDeliveryExecutor_RetriesThenSucceeds(t *testing.T) {
	executor, notificationRepo, organizationRepo := createTestExecutor(t, 3)
	ctx := context.Background()
	orgID := uuid.New()
	notification := pendingNotification(orgID)

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("twilio").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("", errors.New("timeout")).Twice()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("tw-msg-9", nil).Once()

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().RecordRetryFailure(ctx, mock.Anything, 1, mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.EXPECT().RecordRetryFailure(ctx, mock.Anything, 2, mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.EXPECT().MarkSent(ctx, mock.Anything, "twilio", "tw-msg-9", mock.Anything).Return(nil).Once()
	organizationRepo.EXPECT().IncrementSentThisMonth(ctx, orgID, 1).Return(nil).Once()

	err := executor.Dispatch(ctx, notification, provider, true)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, notification.Status)
	assert.Equal(t, 2, notification.RetryCount)
}

func TestDeliveryExecutor_FailsAfterMaxRetries(t *testing.T) {
	executor, notificationRepo, _ := createTestExecutor(t, 3)
	ctx := context.Background()
	notification := pendingNotification(uuid.New())

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("sns").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("", errors.New("unreachable")).Times(3)

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().RecordRetryFailure(ctx, mock.Anything, 1, mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.EXPECT().RecordRetryFailure(ctx, mock.Anything, 2, mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.EXPECT().MarkFailed(ctx, mock.Anything, 3, mock.Anything).Return(nil).Once()

	err := executor.Dispatch(ctx, notification, provider, true)

	require.Error(t, err)
	assert.Equal(t, entity.StatusFailed, notification.Status)
	assert.Equal(t, 3, notification.RetryCount)
	assert.NotEmpty(t, notification.ErrorMessage)
}

func TestDeliveryExecutor_TerminalNotificationIsNoOp(t *testing.T) {
	executor, _, _ := createTestExecutor(t, 3)
	ctx := context.Background()

	notification := pendingNotification(uuid.New())
	notification.ID = uuid.New()
	notification.Status = entity.StatusSent

	provider := mockSvc.NewMockMessageProvider(t)

	// No repository or provider calls expected at all.
	require.NoError(t, executor.Dispatch(ctx, notification, provider, true))

	notification.Status = entity.StatusFailed
	require.NoError(t, executor.Dispatch(ctx, notification, provider, true))
}

func TestDeliveryExecutor_QuotaNotCountedWhenDisabled(t *testing.T) {
	executor, notificationRepo, _ := createTestExecutor(t, 3)
	ctx := context.Background()
	notification := pendingNotification(uuid.New())

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("sns").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("sns-msg-2", nil).Once()

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().MarkSent(ctx, mock.Anything, "sns", "sns-msg-2", mock.Anything).Return(nil).Once()

	// Organization repo receives no increment.
	require.NoError(t, executor.Dispatch(ctx, notification, provider, false))
}

func TestDeliveryExecutor_WhatsAppChannelUsesWhatsAppSend(t *testing.T) {
	executor, notificationRepo, organizationRepo := createTestExecutor(t, 3)
	ctx := context.Background()
	orgID := uuid.New()

	notification := pendingNotification(orgID)
	notification.Channel = entity.ChannelWhatsApp

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("whatsapp-cloud").Maybe()
	provider.EXPECT().SendWhatsApp(ctx, "+525512345678", "cuerpo").Return("wamid.1", nil).Once()

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().MarkSent(ctx, mock.Anything, "whatsapp-cloud", "wamid.1", mock.Anything).Return(nil).Once()
	organizationRepo.EXPECT().IncrementSentThisMonth(ctx, orgID, 1).Return(nil).Once()

	require.NoError(t, executor.Dispatch(ctx, notification, provider, true))
}

func TestDeliveryExecutor_ResumedNotificationSkipsCreate(t *testing.T) {
	executor, notificationRepo, organizationRepo := createTestExecutor(t, 3)
	ctx := context.Background()
	orgID := uuid.New()

	// A swept stale row already has an ID and keeps its retry count.
	notification := pendingNotification(orgID)
	notification.ID = uuid.New()
	notification.RetryCount = 1

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("sns").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").Return("sns-msg-3", nil).Once()

	notificationRepo.EXPECT().MarkSent(ctx, notification.ID, "sns", "sns-msg-3", mock.Anything).Return(nil).Once()
	organizationRepo.EXPECT().IncrementSentThisMonth(ctx, orgID, 1).Return(nil).Once()

	require.NoError(t, executor.Dispatch(ctx, notification, provider, true))
}

func TestDeliveryExecutor_ContextCancelledDuringBackoff(t *testing.T) {
	executor, notificationRepo, _ := createTestExecutor(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	notification := pendingNotification(uuid.New())

	provider := mockSvc.NewMockMessageProvider(t)
	provider.EXPECT().ProviderName().Return("sns").Maybe()
	provider.EXPECT().SendSMS(ctx, "+525512345678", "cuerpo").
		RunAndReturn(func(context.Context, string, string) (string, error) {
			cancel()

			return "", errors.New("unreachable")
		}).Once()

	notificationRepo.EXPECT().Create(ctx, notification).Return(nil).Once()
	notificationRepo.EXPECT().RecordRetryFailure(ctx, mock.Anything, 1, mock.Anything, mock.Anything).Return(nil).Once()

	err := executor.Dispatch(ctx, notification, provider, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
