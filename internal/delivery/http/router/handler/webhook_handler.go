package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rentora/internal/domain/entity"
	"rentora/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WebhookHandler ingests asynchronous delivery-status callbacks from the
// message providers. Both endpoints always acknowledge with 200 so providers
// stop retrying; unmatched or out-of-order events are dropped silently.
type WebhookHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, logger: logger}
}

// TwilioStatus handles Twilio's form-encoded status callback.
// MessageStatus is one of queued|sent|delivered|failed|undelivered; only the
// terminal ones change notification state.
func (h *WebhookHandler) TwilioStatus(c echo.Context) error {
	messageSID := c.FormValue("MessageSid")
	messageStatus := c.FormValue("MessageStatus")
	errorCode := c.FormValue("ErrorCode")

	status, terminal := mapTwilioStatus(messageStatus)
	if messageSID == "" || !terminal {
		return c.NoContent(http.StatusOK)
	}

	event := usecase.DeliveryEvent{
		ProviderMessageID: messageSID,
		Status:            status,
		FailureReason:     errorCode,
		OccurredAt:        time.Now(),
	}

	if err := h.uc.ReconcileDeliveryStatus(c.Request().Context(), event); err != nil {
		// Acknowledge anyway; the provider retrying will not help.
		h.logger.Error("twilio status reconciliation failed",
			slog.String("message_sid", messageSID),
			slog.Any("error", err))
	}

	return c.NoContent(http.StatusOK)
}

// whatsAppStatusPayload is the relevant slice of the WhatsApp Cloud API
// webhook envelope: entry[].changes[].value.statuses[].
type whatsAppStatusPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Statuses []struct {
					ID        string `json:"id"`
					Status    string `json:"status"`
					Timestamp string `json:"timestamp"`
					Errors    []struct {
						Code  int    `json:"code"`
						Title string `json:"title"`
					} `json:"errors"`
				} `json:"statuses"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// WhatsAppStatus handles the WhatsApp Cloud API JSON status webhook. One
// request may carry several status events; each reconciles independently.
func (h *WebhookHandler) WhatsAppStatus(c echo.Context) error {
	var payload whatsAppStatusPayload
	if err := c.Bind(&payload); err != nil {
		h.logger.Warn("unparseable whatsapp webhook payload", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	ctx := c.Request().Context()
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, st := range change.Value.Statuses {
				status, terminal := mapWhatsAppStatus(st.Status)
				if st.ID == "" || !terminal {
					continue
				}

				var reason string
				if len(st.Errors) > 0 {
					reason = st.Errors[0].Title
				}

				event := usecase.DeliveryEvent{
					ProviderMessageID: st.ID,
					Status:            status,
					FailureReason:     reason,
					OccurredAt:        time.Now(),
				}
				if err := h.uc.ReconcileDeliveryStatus(ctx, event); err != nil {
					h.logger.Error("whatsapp status reconciliation failed",
						slog.String("message_id", st.ID),
						slog.Any("error", err))
				}
			}
		}
	}

	return c.NoContent(http.StatusOK)
}

// mapTwilioStatus reduces a Twilio MessageStatus to a notification status.
// Non-terminal intermediate states (queued, sent) report terminal=false.
func mapTwilioStatus(messageStatus string) (entity.NotificationStatus, bool) {
	switch messageStatus {
	case "delivered":
		return entity.StatusDelivered, true
	case "failed", "undelivered":
		return entity.StatusFailed, true
	default:
		return "", false
	}
}

// mapWhatsAppStatus reduces a Cloud API status to a notification status.
func mapWhatsAppStatus(status string) (entity.NotificationStatus, bool) {
	switch status {
	case "delivered", "read":
		return entity.StatusDelivered, true
	case "failed":
		return entity.StatusFailed, true
	default:
		return "", false
	}
}
