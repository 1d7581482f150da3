package main

import (
	"context"
	"log/slog"
	"os"

	"rentora/config"
	"rentora/internal/delivery"
	"rentora/internal/delivery/http"
	"rentora/internal/delivery/http/middleware"
	"rentora/internal/delivery/http/router/handler"
	"rentora/internal/delivery/scheduler"
	"rentora/internal/domain/repository"
	"rentora/internal/domain/service"
	logs "rentora/internal/infra/log"
	"rentora/internal/infra/persistence/postgres"
	"rentora/internal/infra/provider"
	"rentora/internal/usecase"
	"rentora/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectProvider(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNotificationRepository,
			postgres.NewOrganizationRepository,
			postgres.NewPaymentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectProvider() fx.Option {
	return fx.Options(
		fx.Provide(
			newProviderSelector,
		),
	)
}

// newProviderSelector builds the delivery providers from configuration and
// arranges the SMS fallback order with the globally preferred provider first.
func newProviderSelector(ctx context.Context, cfg *config.Config) (*impl.ProviderSelector, error) {
	providersCfg := cfg.Providers
	if providersCfg == nil {
		providersCfg = &config.ProvidersConfig{}
	}

	snsProvider, err := provider.NewSNSProvider(ctx, providersCfg.SNS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sns provider")
	}
	twilioProvider := provider.NewTwilioProvider(providersCfg.Twilio)
	whatsAppProvider := provider.NewWhatsAppProvider(providersCfg.WhatsApp)

	smsProviders := []service.MessageProvider{snsProvider, twilioProvider}
	if providersCfg.PreferredSMS == provider.TwilioProviderName {
		smsProviders = []service.MessageProvider{twilioProvider, snsProvider}
	}

	return impl.NewProviderSelector(smsProviders, []service.MessageProvider{whatsAppProvider}), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDeliveryExecutor,
			impl.NewEligibilityFilter,
			newReminderUsecase,
			impl.NewNotificationUsecase,
		),
	)
}

func newDeliveryExecutor(
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
	cfg *config.Config,
) *impl.DeliveryExecutor {
	return impl.NewDeliveryExecutor(notificationRepo, txManager, logger, cfg.Reminder.MaxRetries, cfg.Reminder.RetryBaseDelay)
}

func newReminderUsecase(
	organizationRepo repository.OrganizationRepository,
	notificationRepo repository.NotificationRepository,
	eligibility *impl.EligibilityFilter,
	selector *impl.ProviderSelector,
	executor *impl.DeliveryExecutor,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ReminderUsecase {
	return impl.NewReminderUsecase(organizationRepo, notificationRepo, eligibility, selector, executor, logger, cfg.Reminder)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewNotificationHandler,
			handler.NewReminderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
