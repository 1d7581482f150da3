package impl

import (
	"context"
	"testing"
	"time"

	"rentora/internal/domain/entity"
	mockRepo "rentora/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eligibilityToday = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func duePayment(id uuid.UUID, status entity.PaymentStatus, paymentType entity.PaymentType) *entity.Payment {
	return &entity.Payment{
		ID:     id,
		Status: status,
		Type:   paymentType,
	}
}

func TestEligibilityFilter_BucketsInPriorityOrder(t *testing.T) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	filter := NewEligibilityFilter(paymentRepo)

	ctx := context.Background()
	orgID := uuid.New()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	upcomingID := uuid.New()
	todayID := uuid.New()
	overdueID := uuid.New()

	both := []entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado}
	overdueOnly := []entity.PaymentStatus{entity.PaymentAtrasado}

	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day.AddDate(0, 0, 3), both).
		Return([]*entity.Payment{duePayment(upcomingID, entity.PaymentPendiente, entity.PaymentTypeRenta)}, nil)
	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day, both).
		Return([]*entity.Payment{duePayment(todayID, entity.PaymentPendiente, entity.PaymentTypeRenta)}, nil)
	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day.AddDate(0, 0, -3), overdueOnly).
		Return([]*entity.Payment{duePayment(overdueID, entity.PaymentAtrasado, entity.PaymentTypeRenta)}, nil)

	eligible, err := filter.Collect(ctx, orgID, eligibilityToday, entity.PlanSuperior)

	require.NoError(t, err)
	require.Len(t, eligible, 3)
	assert.Equal(t, upcomingID, eligible[0].Payment.ID)
	assert.Equal(t, 3, eligible[0].DaysUntilDue)
	assert.Equal(t, todayID, eligible[1].Payment.ID)
	assert.Equal(t, 0, eligible[1].DaysUntilDue)
	assert.Equal(t, overdueID, eligible[2].Payment.ID)
	assert.Equal(t, -3, eligible[2].DaysUntilDue)
}

func TestEligibilityFilter_LowerTierSkipsOverdueBucket(t *testing.T) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	filter := NewEligibilityFilter(paymentRepo)

	ctx := context.Background()
	orgID := uuid.New()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	both := []entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado}

	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day.AddDate(0, 0, 3), both).Return(nil, nil)
	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day, both).Return(nil, nil)
	// No third query for PROFESIONAL.

	eligible, err := filter.Collect(ctx, orgID, eligibilityToday, entity.PlanProfesional)

	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestEligibilityFilter_DropsAdvanceAndSettledPayments(t *testing.T) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	filter := NewEligibilityFilter(paymentRepo)

	ctx := context.Background()
	orgID := uuid.New()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	both := []entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado}

	keepID := uuid.New()
	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day.AddDate(0, 0, 3), both).
		Return([]*entity.Payment{
			duePayment(keepID, entity.PaymentPendiente, entity.PaymentTypeRenta),
			duePayment(uuid.New(), entity.PaymentPendiente, entity.PaymentTypeAnticipo),
			duePayment(uuid.New(), entity.PaymentPagado, entity.PaymentTypeRenta),
		}, nil)
	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day, both).Return(nil, nil)

	eligible, err := filter.Collect(ctx, orgID, eligibilityToday, entity.PlanProfesional)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, keepID, eligible[0].Payment.ID)
}

func TestEligibilityFilter_RepositoryErrorPropagates(t *testing.T) {
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	filter := NewEligibilityFilter(paymentRepo)

	ctx := context.Background()
	orgID := uuid.New()
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	both := []entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado}

	paymentRepo.EXPECT().FindRemindableByDueDate(ctx, orgID, day.AddDate(0, 0, 3), both).
		Return(nil, errors.New("connection refused"))

	_, err := filter.Collect(ctx, orgID, eligibilityToday, entity.PlanSuperior)
	require.Error(t, err)
}
