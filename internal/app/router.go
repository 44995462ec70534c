package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"uberdirect/internal/handlers/rest/couriers_get"
	"uberdirect/internal/handlers/rest/deliveries_get"
	"uberdirect/internal/handlers/rest/deliveries_post"
	"uberdirect/internal/handlers/rest/delivery_cancel_post"
	"uberdirect/internal/handlers/rest/delivery_get"
	"uberdirect/internal/handlers/rest/delivery_post"
	"uberdirect/internal/handlers/rest/delivery_quotes_post"
	"uberdirect/internal/handlers/rest/healthcheck_head"
	"uberdirect/internal/handlers/rest/oauth_token_post"
	"uberdirect/internal/handlers/rest/ping_get"
	"uberdirect/internal/handlers/rest/proof_of_delivery_post"
	"uberdirect/internal/handlers/rest/webhook_post"
	"uberdirect/internal/pkg/config"
	"uberdirect/internal/pkg/middlewares/bearer_auth"
	"uberdirect/internal/pkg/middlewares/graceful_shutdown"
	"uberdirect/internal/pkg/middlewares/metrics"
	"uberdirect/internal/pkg/middlewares/rate_limiter"
	"uberdirect/internal/pkg/middlewares/timeout"
	"uberdirect/pkg/logger"
)

// NewRouter собирает HTTP API песочницы: login.uber.com и api.uber.com на одном хосте.
func NewRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, app.RateLimiter))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/oauth/v2/token", oauth_token_post.New(log, app.ServiceAuth, app.Clock)).Methods("POST")

	router.Handle("/sandbox/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	router.Handle("/sandbox/webhooks", webhook_post.New(log, cfg.Webhook.Secret)).Methods("POST")

	api := router.PathPrefix("/v1/customers/{customer_id}").Subrouter()
	api.Use(bearer_auth.Middleware(log, app.ServiceAuth))

	api.Handle("/delivery_quotes", delivery_quotes_post.New(log, app.ServiceQuote)).Methods("POST")
	api.Handle("/deliveries", deliveries_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/deliveries/{delivery_id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/deliveries/{delivery_id}", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/deliveries/{delivery_id}/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/deliveries/{delivery_id}/proof-of-delivery", proof_of_delivery_post.New(log, app.ServiceDelivery)).Methods("POST")

	return router
}

func NewPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
