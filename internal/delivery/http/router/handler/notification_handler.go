package handler

import (
	"log/slog"
	"net/http"

	"rentora/internal/delivery/http/response"
	"rentora/internal/domain/entity"
	"rentora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler exposes the test-send endpoint and the per-organization
// notification listing.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

// TestSendRequest is the body of POST /notifications/test.
type TestSendRequest struct {
	Phone   string `json:"phone" validate:"required"`
	Channel string `json:"channel" validate:"required,oneof=SMS WHATSAPP BOTH"`
}

// SendTest sends one fixed test message to the given phone over the requested
// channel. No quota is consumed and nothing is persisted.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	var input TestSendRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test send input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	results, err := h.uc.SendTestMessage(c.Request().Context(), input.Phone, entity.NotificationChannel(input.Channel))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Test message dispatched")
}

// ListByOrganization returns an organization's notification records, newest
// first, with limit/offset pagination.
func (h *NotificationHandler) ListByOrganization(c echo.Context) error {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORGANIZATION_ID", "Invalid organization id")
	}

	limit := intQueryParam(c, "limit")
	offset := intQueryParam(c, "offset")

	notifications, err := h.uc.GetOrganizationNotifications(c.Request().Context(), organizationID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

func intQueryParam(c echo.Context, name string) int {
	var value int
	if err := echo.QueryParamsBinder(c).Int(name, &value).BindError(); err != nil {
		return 0
	}

	return value
}
