package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rentora/config"
	domainerrors "rentora/internal/domain/errors"
	"rentora/internal/domain/service"

	"github.com/pkg/errors"
)

// WhatsAppProviderName identifies the WhatsApp Cloud API provider in
// configuration and on persisted notifications.
const WhatsAppProviderName = "whatsapp-cloud"

const defaultWhatsAppBaseURL = "https://graph.facebook.com/v19.0"

// whatsAppProvider sends WhatsApp text messages through the Cloud API.
// Delivery status arrives asynchronously on the JSON status webhook.
type whatsAppProvider struct {
	baseURL       string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
}

// cloudAPIMessageRequest is the request body of POST /{phone-number-id}/messages.
type cloudAPIMessageRequest struct {
	MessagingProduct string              `json:"messaging_product"`
	To               string              `json:"to"`
	Type             string              `json:"type"`
	Text             cloudAPIMessageText `json:"text"`
}

type cloudAPIMessageText struct {
	Body string `json:"body"`
}

// cloudAPIMessageResponse is the accepted-message response shape.
type cloudAPIMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// NewWhatsAppProvider creates the WhatsApp Cloud API provider. A nil or
// incomplete configuration yields an unconfigured provider that the selector
// will skip.
func NewWhatsAppProvider(cfg *config.WhatsAppConfig) service.MessageProvider {
	if cfg == nil || cfg.AccessToken == "" || cfg.PhoneNumberID == "" {
		return &whatsAppProvider{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultWhatsAppBaseURL
	}

	return &whatsAppProvider{
		baseURL:       strings.TrimRight(baseURL, "/"),
		accessToken:   cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProviderName returns the stable provider identifier.
func (p *whatsAppProvider) ProviderName() string {
	return WhatsAppProviderName
}

// IsConfigured reports whether token and sender number ID are present.
func (p *whatsAppProvider) IsConfigured() bool {
	return p.accessToken != "" && p.phoneNumberID != ""
}

// SendSMS is not supported by the WhatsApp Cloud API.
func (p *whatsAppProvider) SendSMS(_ context.Context, _, _ string) (string, error) {
	return "", domainerrors.ErrChannelNotSupported.WrapMessage("whatsapp cloud api does not deliver SMS")
}

// SendWhatsApp sends a text message and returns the Cloud API message ID.
func (p *whatsAppProvider) SendWhatsApp(ctx context.Context, phone, body string) (string, error) {
	if !p.IsConfigured() {
		return "", domainerrors.ErrNoProviderConfigured.WrapMessage("whatsapp provider not configured")
	}

	payload, err := json.Marshal(cloudAPIMessageRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             cloudAPIMessageText{Body: body},
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", p.baseURL, p.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "whatsapp cloud api request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(err, "failed to read whatsapp cloud api response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("whatsapp cloud api returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed cloudAPIMessageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to parse whatsapp cloud api response")
	}
	if len(parsed.Messages) == 0 || parsed.Messages[0].ID == "" {
		return "", errors.New("whatsapp cloud api accepted the message without an ID")
	}

	return parsed.Messages[0].ID, nil
}
