package uberclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"uberdirect/internal/pkg/config"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/retrier"
	"uberdirect/pkg/retrier/backoff_adapter"
	"uberdirect/pkg/uberdirect"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

const (
	MaxIdleConns        = 100
	MaxIdleConnsPerHost = 10
	IdleConnTimeout     = 90 * time.Second

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// RetryConfig - ретраи аутентификации. Повторяются только таймауты, сетевые ошибки, 429 и 5xx.
func RetryConfig(log logger.Logger) retrier.Config {
	return retrier.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     uberr.IsRetryable,
		OnRetry: func(err error, next time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("next", next.String()),
			).Warn("authentication failed, retrying")
		},
	}
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = MaxIdleConns
	transport.MaxIdleConnsPerHost = MaxIdleConnsPerHost
	transport.IdleConnTimeout = IdleConnTimeout

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func NewClient(log logger.Logger, cfg *config.Smoke) *uberdirect.Client {
	opts := []uberdirect.Option{uberdirect.WithLogger(log)}
	if cfg.APIURL != "" {
		opts = append(opts, uberdirect.WithAPIURL(cfg.APIURL))
	}
	if cfg.AuthURL != "" {
		opts = append(opts, uberdirect.WithAuthURL(cfg.AuthURL))
	}

	return uberdirect.New(NewHTTPClient(cfg.HTTPTimeout), opts...)
}

// Connect создает клиент и получает токен, повторяя временные ошибки.
func Connect(ctx context.Context, log logger.Logger, cfg *config.Smoke) (*uberdirect.Client, uberdirect.Credentials, error) {
	client := NewClient(log, cfg)

	authLog := log.With(
		logger.NewField("component", "uber-client"),
		logger.NewField("customer_id", cfg.CustomerID),
	)

	creds, err := Authenticate(ctx, authLog, backoff_adapter.New(RetryConfig(authLog)), client, cfg)
	if err != nil {
		return nil, uberdirect.Credentials{}, fmt.Errorf("uber direct connection: %w", err)
	}

	return client, creds, nil
}

func Authenticate(
	ctx context.Context,
	log logger.Logger,
	retry Retrier,
	client Authenticator,
	cfg *config.Smoke,
) (uberdirect.Credentials, error) {
	req := models.NewAuthRequest(cfg.ClientID, cfg.ClientSecret)

	var (
		attempt uint64
		resp    *models.AuthResponse
	)
	err := retry.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting authentication")

		var err error
		resp, err = client.Authenticate(ctx, req)
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("authentication failed after retries")
		return uberdirect.Credentials{}, fmt.Errorf("failed to authenticate: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
		logger.NewField("expires_in", resp.ExpiresIn),
	).Info("authenticated")

	return uberdirect.Credentials{
		AccessToken: resp.AccessToken,
		CustomerID:  cfg.CustomerID,
	}, nil
}
