package repository

import (
	"context"
	"time"

	"rentora/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository is a read-only view over the payments subsystem. The
// reminder engine references payments but never mutates them.
type PaymentRepository interface {
	// FindRemindableByDueDate returns the payments of an organization due on
	// the given calendar date whose status is in statuses, joined with the
	// contract and primary tenant contact data. Advance payments (ANTICIPO)
	// are excluded.
	FindRemindableByDueDate(ctx context.Context, organizationID uuid.UUID, dueDate time.Time, statuses []entity.PaymentStatus) ([]*entity.Payment, error)
}
