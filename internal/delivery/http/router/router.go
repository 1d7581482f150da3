// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rentora/config"
	"rentora/internal/delivery/http/middleware"
	"rentora/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	WebhookHandler      *handler.WebhookHandler
	NotificationHandler *handler.NotificationHandler
	ReminderHandler     *handler.ReminderHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	webhookHandler      *handler.WebhookHandler
	notificationHandler *handler.NotificationHandler
	reminderHandler     *handler.ReminderHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		webhookHandler:      params.WebhookHandler,
		notificationHandler: params.NotificationHandler,
		reminderHandler:     params.ReminderHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider status callbacks, no auth: providers sign nothing we verify
	// beyond the message id match, and both must always receive 200.
	webhookGroup := e.Group("/webhooks")
	{
		webhookGroup.POST("/twilio/status", r.webhookHandler.TwilioStatus)
		webhookGroup.POST("/whatsapp/status", r.webhookHandler.WhatsAppStatus)
	}

	// Organization-facing notification routes
	e.GET("/organizations/:id/notifications", r.notificationHandler.ListByOrganization)

	// Test-send endpoint, toggled off outside development
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		e.POST("/notifications/test", r.notificationHandler.SendTest)
	}

	// Operator routes behind the admin JWT
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/reminders/run", r.reminderHandler.TriggerRun)
	}
}
