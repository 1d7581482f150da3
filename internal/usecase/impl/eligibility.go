package impl

import (
	"context"
	"time"

	"rentora/internal/domain/entity"
	"rentora/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reminderOffsetDays is how far ahead (and behind) the engine looks:
// an upcoming reminder fires 3 days before the due date, the overdue
// reminder fires 3 days after.
const reminderOffsetDays = 3

// EligiblePayment is one payment selected for a reminder, tagged with its
// day-offset bucket relative to "today".
type EligiblePayment struct {
	Payment      *entity.Payment
	DaysUntilDue int // 3 upcoming, 0 due today, -3 overdue
}

// EligibilityFilter selects the payments an organization should be reminded
// about on a given day. Pure selection, no side effects.
type EligibilityFilter struct {
	paymentRepo repository.PaymentRepository
}

// NewEligibilityFilter creates an eligibility filter backed by the payment
// read model.
func NewEligibilityFilter(paymentRepo repository.PaymentRepository) *EligibilityFilter {
	return &EligibilityFilter{paymentRepo: paymentRepo}
}

// Collect builds the eligible payment list for one organization: payments due
// in 3 days, payments due today and, for plans that include overdue
// reminders, payments 3 days overdue that are still marked ATRASADO. Buckets
// are concatenated upcoming first so quota exhaustion never drops a due-today
// reminder in favor of an overdue one.
func (f *EligibilityFilter) Collect(ctx context.Context, organizationID uuid.UUID, today time.Time, plan entity.PlanCode) ([]EligiblePayment, error) {
	day := truncateToDay(today)

	var eligible []EligiblePayment

	upcoming, err := f.paymentRepo.FindRemindableByDueDate(ctx, organizationID, day.AddDate(0, 0, reminderOffsetDays),
		[]entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load upcoming payments")
	}
	eligible = appendBucket(eligible, upcoming, reminderOffsetDays)

	dueToday, err := f.paymentRepo.FindRemindableByDueDate(ctx, organizationID, day,
		[]entity.PaymentStatus{entity.PaymentPendiente, entity.PaymentAtrasado})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load due-today payments")
	}
	eligible = appendBucket(eligible, dueToday, 0)

	if plan.IncludesOverdueReminders() {
		overdue, err := f.paymentRepo.FindRemindableByDueDate(ctx, organizationID, day.AddDate(0, 0, -reminderOffsetDays),
			[]entity.PaymentStatus{entity.PaymentAtrasado})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load overdue payments")
		}
		eligible = appendBucket(eligible, overdue, -reminderOffsetDays)
	}

	return eligible, nil
}

func appendBucket(eligible []EligiblePayment, payments []*entity.Payment, daysUntilDue int) []EligiblePayment {
	for _, p := range payments {
		if !p.IsRemindable() {
			continue
		}
		eligible = append(eligible, EligiblePayment{Payment: p, DaysUntilDue: daysUntilDue})
	}

	return eligible
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
