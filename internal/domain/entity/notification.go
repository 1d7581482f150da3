// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel is the transport a message travels over.
type NotificationChannel string

const (
	ChannelSMS      NotificationChannel = "SMS"
	ChannelWhatsApp NotificationChannel = "WHATSAPP"
	// ChannelBoth fans out into one SMS and one WhatsApp notification.
	// A persisted Notification row never carries this value.
	ChannelBoth NotificationChannel = "BOTH"
)

// RecipientKind identifies who a notification is addressed to.
type RecipientKind string

const (
	RecipientTenant RecipientKind = "TENANT"
	RecipientOwner  RecipientKind = "OWNER"
)

// NotificationKind classifies the purpose of a notification.
type NotificationKind string

const (
	KindPaymentReminder NotificationKind = "PAYMENT_REMINDER"
	KindAdminDigest     NotificationKind = "ADMIN_DIGEST"
	KindTestMessage     NotificationKind = "TEST_MESSAGE"
)

// NotificationStatus is the delivery state of a notification.
type NotificationStatus string

const (
	StatusPending   NotificationStatus = "PENDING"
	StatusSent      NotificationStatus = "SENT"
	StatusDelivered NotificationStatus = "DELIVERED"
	StatusFailed    NotificationStatus = "FAILED"
)

// statusTransitions is the closed transition table for notification state.
// PENDING -> {SENT, FAILED}, SENT -> {DELIVERED, FAILED}.
// DELIVERED and FAILED are terminal.
var statusTransitions = map[NotificationStatus][]NotificationStatus{
	StatusPending: {StatusSent, StatusFailed},
	StatusSent:    {StatusDelivered, StatusFailed},
}

// CanTransitionTo reports whether moving from s to next is a valid transition.
func (s NotificationStatus) CanTransitionTo(next NotificationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s NotificationStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// Notification represents one message dispatched (or pending dispatch) to a
// single recipient over a single channel.
type Notification struct {
	ID                uuid.UUID           `json:"id"`
	OrganizationID    uuid.UUID           `json:"organization_id"`
	RecipientKind     RecipientKind       `json:"recipient_kind"`
	RecipientID       uuid.UUID           `json:"recipient_id"`
	RecipientPhone    string              `json:"recipient_phone"` // E.164-normalized
	Kind              NotificationKind    `json:"kind"`
	Title             string              `json:"title"`
	Body              string              `json:"body"`
	Channel           NotificationChannel `json:"channel"` // SMS or WHATSAPP, never BOTH
	Status            NotificationStatus  `json:"status"`
	ProviderName      string              `json:"provider_name,omitempty"`
	ProviderMessageID string              `json:"provider_message_id,omitempty"`
	RetryCount        int                 `json:"retry_count"`
	LastRetryAt       *time.Time          `json:"last_retry_at,omitempty"`
	ErrorMessage      string              `json:"error_message,omitempty"`
	RelatedPaymentID  *uuid.UUID          `json:"related_payment_id,omitempty"`
	RelatedContractID *uuid.UUID          `json:"related_contract_id,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	SentAt            *time.Time          `json:"sent_at,omitempty"`
	DeliveredAt       *time.Time          `json:"delivered_at,omitempty"`
}
