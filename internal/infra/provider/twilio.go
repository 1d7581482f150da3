package provider

import (
	"context"

	"rentora/config"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProviderName identifies the Twilio SMS provider in configuration and
// on persisted notifications.
const TwilioProviderName = "twilio"

// twilioProvider sends SMS through the Twilio messaging API. Delivery status
// arrives asynchronously on the form-encoded status callback webhook.
type twilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioProvider creates the Twilio SMS provider. A nil or incomplete
// configuration yields an unconfigured provider that the selector will skip.
func NewTwilioProvider(cfg *config.TwilioConfig) service.MessageProvider {
	if cfg == nil || cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return &twilioProvider{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioProvider{
		client:     client,
		fromNumber: cfg.FromNumber,
	}
}

// ProviderName returns the stable provider identifier.
func (p *twilioProvider) ProviderName() string {
	return TwilioProviderName
}

// IsConfigured reports whether credentials and a sender number are present.
func (p *twilioProvider) IsConfigured() bool {
	return p.client != nil
}

// SendSMS sends a plain text message and returns the Twilio message SID.
// The Twilio SDK manages its own HTTP deadlines, so only the context's
// cancellation state is honored before dispatch.
func (p *twilioProvider) SendSMS(ctx context.Context, phone, body string) (string, error) {
	if !p.IsConfigured() {
		return "", domainerrors.ErrNoProviderConfigured.WrapMessage("twilio provider not configured")
	}
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(p.fromNumber)
	params.SetBody(body)

	resp, err := p.client.Api.CreateMessage(params)
	if err != nil {
		return "", errors.Wrap(err, "twilio create message failed")
	}
	if resp.Sid == nil {
		return "", errors.New("twilio accepted the message without a SID")
	}

	return *resp.Sid, nil
}

// SendWhatsApp is not used for Twilio in this deployment; WhatsApp traffic
// goes through the Cloud API provider.
func (p *twilioProvider) SendWhatsApp(_ context.Context, _, _ string) (string, error) {
	return "", domainerrors.ErrChannelNotSupported.WrapMessage("twilio is configured for SMS only")
}
