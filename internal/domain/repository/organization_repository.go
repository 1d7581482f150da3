package repository

import (
	"context"
	"errors"

	"rentora/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for organization persistence.
var (
	// ErrOrganizationNotFound is returned when an organization is not found.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrQuotaExhausted is returned when an increment would push the monthly
	// counter past the plan limit. The row is left untouched.
	ErrQuotaExhausted = errors.New("monthly notification quota exhausted")
)

// OrganizationRepository defines organization-level persistence operations for
// the reminder engine. Entity CRUD lives elsewhere; this interface only covers
// the read view and the quota counter.
type OrganizationRepository interface {
	// FindByID retrieves an organization with its notification settings.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)

	// FindNotificationEnabled returns all organizations with reminders
	// enabled, in no particular order.
	FindNotificationEnabled(ctx context.Context) ([]*entity.Organization, error)

	// IncrementSentThisMonth adds delta to the organization's monthly sent
	// counter in a single guarded UPDATE: the increment only applies when
	// sent_this_month + delta <= monthly_limit, otherwise ErrQuotaExhausted
	// is returned. Never read-modify-write.
	IncrementSentThisMonth(ctx context.Context, id uuid.UUID, delta int) error
}
