package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"
)

var logLevels = []string{"", "debug", "info", "warn", "error"}

type (
	Tasks struct {
		RoboCourierInterval     time.Duration
		WebhookDispatchInterval time.Duration
		CleanupInterval         time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Auth struct {
		ClientID     string
		ClientSecret string
		TokenTTL     time.Duration
	}

	Fleet struct {
		Size int
	}

	Webhook struct {
		// пустой URL отключает отправку вебхуков
		URL     string
		Secret  string
		Timeout time.Duration
	}

	Config struct {
		// уровень zap логгера, пустой - info
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Auth     Auth
		Fleet    Fleet
		Webhook  Webhook
	}

	// Smoke - настройки cmd/smoke, который прогоняет клиент против Uber Direct или песочницы.
	Smoke struct {
		ClientID     string
		ClientSecret string
		CustomerID   string
		AuthURL      string
		APIURL       string
		HTTPTimeout  time.Duration
		RoboCourier  bool
		LogLevel     string
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func LoadSmoke() (*Smoke, error) {
	cfg, err := loadSmokeFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateSmoke(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	roboCourierInterval, err := osGetEnvDuration("SANDBOX_ROBO_COURIER_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	webhookDispatchInterval, err := osGetEnvDuration("SANDBOX_WEBHOOK_DISPATCH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("SANDBOX_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("SANDBOX_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fleetSize, err := osGetInt("SANDBOX_FLEET_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	webhookTimeout, err := osGetEnvDuration("SANDBOX_WEBHOOK_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			RoboCourierInterval:     roboCourierInterval,
			WebhookDispatchInterval: webhookDispatchInterval,
			CleanupInterval:         cleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Auth: Auth{
			ClientID:     os.Getenv("SANDBOX_CLIENT_ID"),
			ClientSecret: os.Getenv("SANDBOX_CLIENT_SECRET"),
			TokenTTL:     tokenTTL,
		},
		Fleet: Fleet{
			Size: fleetSize,
		},
		Webhook: Webhook{
			URL:     os.Getenv("SANDBOX_WEBHOOK_URL"),
			Secret:  os.Getenv("SANDBOX_WEBHOOK_SECRET"),
			Timeout: webhookTimeout,
		},
		LogLevel: os.Getenv("LOG_LEVEL"),
	}, nil
}

func loadSmokeFromEnv() (*Smoke, error) {
	httpTimeout, err := osGetEnvDuration("UBER_HTTP_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	roboCourier, err := osGetBool("UBER_ROBO_COURIER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Smoke{
		ClientID:     os.Getenv("client_id"),
		ClientSecret: os.Getenv("client_secret"),
		CustomerID:   os.Getenv("customer_id"),
		AuthURL:      os.Getenv("UBER_AUTH_URL"),
		APIURL:       os.Getenv("UBER_API_URL"),
		HTTPTimeout:  httpTimeout,
		RoboCourier:  roboCourier,
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}, nil
}

func validateConfig(cfg *Config) error {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Auth.ClientID == "" {
		return errors.New("SANDBOX_CLIENT_ID is required")
	}
	if cfg.Auth.ClientSecret == "" {
		return errors.New("SANDBOX_CLIENT_SECRET is required")
	}
	if cfg.Auth.TokenTTL == time.Duration(0) {
		return errors.New("SANDBOX_TOKEN_TTL is required")
	}

	if cfg.Fleet.Size <= 0 {
		return errors.New("SANDBOX_FLEET_SIZE must be positive")
	}

	if cfg.Tasks.RoboCourierInterval == time.Duration(0) {
		return errors.New("SANDBOX_ROBO_COURIER_INTERVAL is required")
	}
	if cfg.Tasks.WebhookDispatchInterval == time.Duration(0) {
		return errors.New("SANDBOX_WEBHOOK_DISPATCH_INTERVAL is required")
	}
	if cfg.Tasks.CleanupInterval == time.Duration(0) {
		return errors.New("SANDBOX_CLEANUP_INTERVAL is required")
	}

	if cfg.Webhook.URL != "" && cfg.Webhook.Timeout == time.Duration(0) {
		return errors.New("SANDBOX_WEBHOOK_TIMEOUT is required when SANDBOX_WEBHOOK_URL is set")
	}

	return nil
}

func validateSmoke(cfg *Smoke) error {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.ClientID == "" {
		return errors.New("client_id is required")
	}
	if cfg.ClientSecret == "" {
		return errors.New("client_secret is required")
	}
	if cfg.CustomerID == "" {
		return errors.New("customer_id is required")
	}
	if cfg.HTTPTimeout == time.Duration(0) {
		return errors.New("UBER_HTTP_TIMEOUT is required")
	}
	return nil
}

func validateLogLevel(level string) error {
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", level)
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
