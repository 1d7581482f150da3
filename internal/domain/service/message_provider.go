// Package service defines interfaces for external collaborators.
package service

import "context"

// MessageProvider is the capability contract every delivery provider
// implements. Providers that do not support a channel return
// domainerrors.ErrChannelNotSupported from the corresponding send method.
type MessageProvider interface {
	// ProviderName returns the stable identifier used in configuration and
	// persisted on notifications (e.g. "sns", "twilio", "whatsapp-cloud").
	ProviderName() string

	// IsConfigured reports whether the provider has the credentials it needs
	// to send. Selection only ever inspects configuration status; it has no
	// side effects.
	IsConfigured() bool

	// SendSMS sends a plain text message to an E.164 phone number and returns
	// the provider-assigned message ID.
	SendSMS(ctx context.Context, phone, body string) (providerMessageID string, err error)

	// SendWhatsApp sends a WhatsApp text message to an E.164 phone number and
	// returns the provider-assigned message ID.
	SendWhatsApp(ctx context.Context, phone, body string) (providerMessageID string, err error)
}
