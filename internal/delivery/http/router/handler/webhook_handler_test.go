package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"rentora/internal/domain/entity"
	"rentora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUsecase captures reconciled delivery events.
type recordingUsecase struct {
	events []usecase.DeliveryEvent
	err    error
}

func (r *recordingUsecase) SendTestMessage(context.Context, string, entity.NotificationChannel) ([]usecase.TestSendResult, error) {
	return nil, nil
}

func (r *recordingUsecase) ReconcileDeliveryStatus(_ context.Context, event usecase.DeliveryEvent) error {
	r.events = append(r.events, event)

	return r.err
}

func (r *recordingUsecase) GetOrganizationNotifications(context.Context, uuid.UUID, int, int) ([]*entity.Notification, error) {
	return nil, nil
}

func newWebhookTestHandler(uc usecase.NotificationUsecase) *WebhookHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewWebhookHandler(uc, logger)
}

func postForm(t *testing.T, handler echo.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twilio/status", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec
}

func TestTwilioStatus_DeliveredEvent(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	rec := postForm(t, h.TwilioStatus, url.Values{
		"MessageSid":    {"SM123"},
		"MessageStatus": {"delivered"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.events, 1)
	assert.Equal(t, "SM123", uc.events[0].ProviderMessageID)
	assert.Equal(t, entity.StatusDelivered, uc.events[0].Status)
}

func TestTwilioStatus_UndeliveredMapsToFailed(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	rec := postForm(t, h.TwilioStatus, url.Values{
		"MessageSid":    {"SM124"},
		"MessageStatus": {"undelivered"},
		"ErrorCode":     {"30003"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.events, 1)
	assert.Equal(t, entity.StatusFailed, uc.events[0].Status)
	assert.Equal(t, "30003", uc.events[0].FailureReason)
}

func TestTwilioStatus_IntermediateStatesAreIgnored(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	for _, status := range []string{"queued", "sent"} {
		rec := postForm(t, h.TwilioStatus, url.Values{
			"MessageSid":    {"SM125"},
			"MessageStatus": {status},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Empty(t, uc.events)
}

func TestTwilioStatus_AcknowledgesEvenWhenReconciliationFails(t *testing.T) {
	uc := &recordingUsecase{err: assert.AnError}
	h := newWebhookTestHandler(uc)

	rec := postForm(t, h.TwilioStatus, url.Values{
		"MessageSid":    {"SM126"},
		"MessageStatus": {"failed"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWhatsAppStatus_DeliveredEvent(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	body := `{"entry":[{"changes":[{"value":{"statuses":[{"id":"wamid.1","status":"delivered","timestamp":"1756371600"}]}}]}]}`
	rec := postJSON(t, h.WhatsAppStatus, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.events, 1)
	assert.Equal(t, "wamid.1", uc.events[0].ProviderMessageID)
	assert.Equal(t, entity.StatusDelivered, uc.events[0].Status)
}

func TestWhatsAppStatus_FailedEventCarriesReason(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	body := `{"entry":[{"changes":[{"value":{"statuses":[{"id":"wamid.2","status":"failed","errors":[{"code":131026,"title":"Message undeliverable"}]}]}}]}]}`
	rec := postJSON(t, h.WhatsAppStatus, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.events, 1)
	assert.Equal(t, entity.StatusFailed, uc.events[0].Status)
	assert.Equal(t, "Message undeliverable", uc.events[0].FailureReason)
}

func TestWhatsAppStatus_MultipleStatusesInOnePayload(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	body := `{"entry":[{"changes":[{"value":{"statuses":[
		{"id":"wamid.3","status":"delivered"},
		{"id":"wamid.4","status":"sent"},
		{"id":"wamid.5","status":"failed"}
	]}}]}]}`
	rec := postJSON(t, h.WhatsAppStatus, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The intermediate "sent" event is skipped.
	require.Len(t, uc.events, 2)
	assert.Equal(t, "wamid.3", uc.events[0].ProviderMessageID)
	assert.Equal(t, "wamid.5", uc.events[1].ProviderMessageID)
}

func TestWhatsAppStatus_GarbagePayloadStillAcknowledged(t *testing.T) {
	uc := &recordingUsecase{}
	h := newWebhookTestHandler(uc)

	rec := postJSON(t, h.WhatsAppStatus, `{"not":"a webhook"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uc.events)
}
