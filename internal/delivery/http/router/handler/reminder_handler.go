package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rentora/internal/delivery/http/response"
	"rentora/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler exposes the operator trigger for the reminder batch.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{uc: uc, logger: logger}
}

// TriggerRun starts one reminder cycle synchronously and returns its summary.
// The route sits behind the admin JWT middleware.
func (h *ReminderHandler) TriggerRun(c echo.Context) error {
	h.logger.Info("reminder run triggered by operator")

	summary, err := h.uc.RunReminderCycle(c.Request().Context(), time.Now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Reminder cycle completed")
}
