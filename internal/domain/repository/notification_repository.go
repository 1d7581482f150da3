// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"rentora/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrInvalidStatusTransition is returned when an update would violate the
	// notification state machine.
	ErrInvalidStatusTransition = errors.New("invalid notification status transition")
)

// NotificationRepository defines the interface for notification-related
// database operations. Notification rows are written by the delivery executor
// and updated by the webhook reconciler; no other writer exists.
type NotificationRepository interface {
	// Create persists a new notification in PENDING state.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByProviderMessageID retrieves a notification by the message ID the
	// provider assigned on acceptance.
	FindByProviderMessageID(ctx context.Context, providerMessageID string) (*entity.Notification, error)

	// MarkSent transitions a PENDING notification to SENT, recording the
	// provider that accepted the message and its message ID.
	MarkSent(ctx context.Context, id uuid.UUID, providerName, providerMessageID string, sentAt time.Time) error

	// RecordRetryFailure stores the retry counter and timestamp of a failed
	// attempt that will be retried.
	RecordRetryFailure(ctx context.Context, id uuid.UUID, retryCount int, lastRetryAt time.Time, errorMessage string) error

	// MarkFailed transitions a notification to the terminal FAILED state.
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, errorMessage string) error

	// ReconcileDeliveryStatus applies an asynchronous provider status to a
	// SENT notification. The update is guarded so it only ever applies
	// SENT -> DELIVERED or SENT -> FAILED; any other current state leaves the
	// row untouched and returns ErrInvalidStatusTransition.
	ReconcileDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, at time.Time, failureReason string) error

	// FindStalePending returns PENDING notifications created before the given
	// cutoff that never received a provider acknowledgment. They are swept
	// and re-dispatched by the next reminder run.
	FindStalePending(ctx context.Context, before time.Time) ([]*entity.Notification, error)

	// FindByOrganization retrieves notifications for an organization, newest
	// first, with pagination.
	FindByOrganization(ctx context.Context, organizationID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
