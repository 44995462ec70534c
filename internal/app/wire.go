//go:build wireinject
// +build wireinject

package app

import (
	"context"

	webhookGateway "uberdirect/internal/gateway/webhook"
	"uberdirect/internal/handlers/tasks/robo_courier"
	"uberdirect/internal/handlers/tasks/sandbox_cleanup"
	"uberdirect/internal/handlers/tasks/webhook_dispatch"
	"uberdirect/internal/pkg/clock"
	"uberdirect/internal/pkg/config"
	"uberdirect/internal/pkg/factory/courier_eta"
	"uberdirect/internal/pkg/factory/status_transition"

	courierRepo "uberdirect/internal/repository/courier"
	deliveryRepo "uberdirect/internal/repository/delivery"
	quoteRepo "uberdirect/internal/repository/quote"
	tokenRepo "uberdirect/internal/repository/token"
	authService "uberdirect/internal/service/auth"
	courierService "uberdirect/internal/service/courier"
	deliveryService "uberdirect/internal/service/delivery"
	quoteService "uberdirect/internal/service/quote"

	"uberdirect/pkg/logger"
	"uberdirect/pkg/token_bucket"
	"uberdirect/pkg/tx"

	"github.com/google/wire"
)

// InitializeApplication для песочницы (cmd/sandbox)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		clock.New,
		tx.New,
		courier_eta.New,
		provideRoboCourierInterval,
		provideWebhookDispatchInterval,
		provideCleanupInterval,
		provideRateLimiter,
		provideWebhookHTTPClient,

		tokenRepo.New,
		quoteRepo.New,
		deliveryRepo.New,
		provideCourierRepository,

		provideWebhookGateway,

		provideServiceAuth,
		provideServiceQuote,
		provideServiceCourier,
		provideServiceDelivery,
		status_transition.NewStatusTransitionFactory,

		provideRoboCourierTask,
		provideWebhookDispatchTask,
		provideSandboxCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceQuote), new(*quoteService.Quote)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(authService.Repository), new(*tokenRepo.Repository)),
		wire.Bind(new(authService.Clock), new(*clock.Clock)),
		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(quoteService.Clock), new(*clock.Clock)),
		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.QuoteService), new(*quoteService.Quote)),
		wire.Bind(new(deliveryService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(deliveryService.TransitionFactory), new(*status_transition.StatusTransitionFactory)),
		wire.Bind(new(deliveryService.Notifier), new(*webhookGateway.WebhookGateway)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.Clock), new(*clock.Clock)),
		wire.Bind(new(status_transition.CourierService), new(*courierService.Courier)),
		wire.Bind(new(status_transition.EtaFactory), new(*courier_eta.CourierEtaFactory)),

		wire.Bind(new(robo_courier.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(webhook_dispatch.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(sandbox_cleanup.TokenService), new(*authService.Auth)),
		wire.Bind(new(sandbox_cleanup.QuoteService), new(*quoteService.Quote)),
		wire.Bind(new(sandbox_cleanup.Limiter), new(*token_bucket.Buckets)),
	)
	return &Application{}, nil
}
