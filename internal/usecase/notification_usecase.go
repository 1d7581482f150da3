package usecase

import (
	"context"
	"time"

	"rentora/internal/domain/entity"

	"github.com/google/uuid"
)

// TestSendResult reports the outcome of one test-message leg.
type TestSendResult struct {
	Channel           entity.NotificationChannel `json:"channel"`
	Provider          string                     `json:"provider"`
	ProviderMessageID string                     `json:"provider_message_id,omitempty"`
	Error             string                     `json:"error,omitempty"`
}

// DeliveryEvent is the provider-agnostic reduction of a status webhook:
// which provider message it concerns and what the new state is.
type DeliveryEvent struct {
	ProviderMessageID string
	Status            entity.NotificationStatus // DELIVERED or FAILED
	FailureReason     string
	OccurredAt        time.Time
}

// NotificationUsecase covers the synchronous notification surfaces: the
// test-message endpoint, webhook reconciliation and record listing.
type NotificationUsecase interface {
	// SendTestMessage sends one fixed test message to the given raw phone
	// number over the requested channel (BOTH fans out to two legs with
	// independent outcomes). It consumes no quota and persists nothing.
	SendTestMessage(ctx context.Context, rawPhone string, channel entity.NotificationChannel) ([]TestSendResult, error)

	// ReconcileDeliveryStatus applies an asynchronous provider delivery event.
	// Unknown provider message IDs and notifications already in a terminal
	// state are acknowledged and ignored.
	ReconcileDeliveryStatus(ctx context.Context, event DeliveryEvent) error

	// GetOrganizationNotifications lists an organization's persisted
	// notification records, newest first.
	GetOrganizationNotifications(ctx context.Context, organizationID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
