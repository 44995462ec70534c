package app

import (
	"context"
	"net/http"
	"time"

	webhookGateway "uberdirect/internal/gateway/webhook"
	"uberdirect/internal/handlers/tasks/robo_courier"
	"uberdirect/internal/handlers/tasks/sandbox_cleanup"
	"uberdirect/internal/handlers/tasks/webhook_dispatch"
	"uberdirect/internal/pkg/clock"
	"uberdirect/internal/pkg/config"
	courierRepo "uberdirect/internal/repository/courier"
	authService "uberdirect/internal/service/auth"
	courierService "uberdirect/internal/service/courier"
	deliveryService "uberdirect/internal/service/delivery"
	quoteService "uberdirect/internal/service/quote"
	"uberdirect/pkg/background"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/token_bucket"
)

func provideRoboCourierInterval(cfg *config.Config) RoboCourierInterval {
	return RoboCourierInterval(cfg.Tasks.RoboCourierInterval)
}

func provideWebhookDispatchInterval(cfg *config.Config) WebhookDispatchInterval {
	return WebhookDispatchInterval(cfg.Tasks.WebhookDispatchInterval)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.CleanupInterval)
}

func provideRateLimiter(cfg *config.Config) *token_bucket.Buckets {
	return token_bucket.NewBuckets(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))
}

func provideWebhookHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Webhook.Timeout}
}

func provideWebhookGateway(client *http.Client, cfg *config.Config) *webhookGateway.WebhookGateway {
	return webhookGateway.New(client, cfg.Webhook.URL, cfg.Webhook.Secret)
}

func provideCourierRepository(cfg *config.Config, c *clock.Clock) *courierRepo.Repository {
	return courierRepo.New(courierRepo.NewFleet(cfg.Fleet.Size, c.Now()))
}

func provideServiceAuth(repository authService.Repository, c authService.Clock, cfg *config.Config) *authService.Auth {
	return authService.New(repository, c, authService.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		TokenTTL:     cfg.Auth.TokenTTL,
	})
}

func provideServiceQuote(repository quoteService.Repository, c quoteService.Clock) *quoteService.Quote {
	return quoteService.New(repository, c)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	quotes deliveryService.QuoteService,
	couriers deliveryService.CourierService,
	transitions deliveryService.TransitionFactory,
	notifier deliveryService.Notifier,
	txManager deliveryService.TxManager,
	c deliveryService.Clock,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		quotes,
		couriers,
		transitions,
		notifier,
		txManager,
		c,
	)
}

func provideRoboCourierTask(
	log logger.Logger,
	service robo_courier.Service,
	interval RoboCourierInterval,
) *robo_courier.RoboCourier {
	return robo_courier.NewRoboCourier(log, service, time.Duration(interval))
}

func provideWebhookDispatchTask(
	log logger.Logger,
	service webhook_dispatch.Service,
	interval WebhookDispatchInterval,
) *webhook_dispatch.WebhookDispatch {
	return webhook_dispatch.NewWebhookDispatch(log, service, time.Duration(interval))
}

func provideSandboxCleanupTask(
	log logger.Logger,
	tokens sandbox_cleanup.TokenService,
	quotes sandbox_cleanup.QuoteService,
	limiter sandbox_cleanup.Limiter,
	interval CleanupInterval,
) *sandbox_cleanup.SandboxCleanup {
	return sandbox_cleanup.NewSandboxCleanup(log, tokens, quotes, limiter, time.Duration(interval))
}

func provideTaskList(
	roboCourierTask *robo_courier.RoboCourier,
	webhookDispatchTask *webhook_dispatch.WebhookDispatch,
	sandboxCleanupTask *sandbox_cleanup.SandboxCleanup,
) []background.Task {
	return []background.Task{
		roboCourierTask,
		webhookDispatchTask,
		sandboxCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
