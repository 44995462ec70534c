package app

import (
	"time"

	"uberdirect/internal/handlers/rest/couriers_get"
	"uberdirect/internal/handlers/rest/deliveries_get"
	"uberdirect/internal/handlers/rest/deliveries_post"
	"uberdirect/internal/handlers/rest/delivery_cancel_post"
	"uberdirect/internal/handlers/rest/delivery_get"
	"uberdirect/internal/handlers/rest/delivery_post"
	"uberdirect/internal/handlers/rest/delivery_quotes_post"
	"uberdirect/internal/handlers/rest/oauth_token_post"
	"uberdirect/internal/handlers/rest/proof_of_delivery_post"
	"uberdirect/internal/pkg/clock"
	"uberdirect/internal/pkg/middlewares/bearer_auth"
	"uberdirect/pkg/background"
	"uberdirect/pkg/token_bucket"
)

type (
	RoboCourierInterval     time.Duration
	WebhookDispatchInterval time.Duration
	CleanupInterval         time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceQuote      ServiceQuote
	ServiceDelivery   ServiceDelivery
	ServiceCourier    ServiceCourier
	Clock             *clock.Clock
	RateLimiter       *token_bucket.Buckets
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	oauth_token_post.Service
	bearer_auth.Authorizer
}

type ServiceQuote interface {
	delivery_quotes_post.Service
}

type ServiceDelivery interface {
	deliveries_post.Service
	deliveries_get.Service
	delivery_get.Service
	delivery_post.Service
	delivery_cancel_post.Service
	proof_of_delivery_post.Service
}

type ServiceCourier interface {
	couriers_get.Service
}

