package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"uberdirect/internal/entities"
	retrierconfig "uberdirect/pkg/retrier"
	"uberdirect/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "webhook"

	// SignatureHeader - HMAC-SHA256 тела в hex, ключ - секрет подписи вебхуков.
	SignatureHeader = "X-Postmates-Signature"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook receiver responded %d", e.Code)
}

type WebhookGateway struct {
	client  client
	retrier retrier
	url     string
	secret  []byte
}

func New(client client, url, secret string) *WebhookGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &WebhookGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		url:     url,
		secret:  []byte(secret),
	}
}

// Enabled - вебхуки отправляются, только если задан адрес получателя.
func (g *WebhookGateway) Enabled() bool {
	return g.url != ""
}

func (g *WebhookGateway) SendDeliveryStatus(ctx context.Context, event entities.StatusEvent) error {
	body, err := json.Marshal(toDeliveryStatus(event))
	if err != nil {
		return fmt.Errorf("gateway webhook, encode %s: %w", event.DeliveryID, err)
	}

	err = g.executeWithMetrics(ctx, event.Kind, func(ctx context.Context) error {
		return g.post(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("gateway webhook, send %s: %w", event.DeliveryID, err)
	}

	return nil
}

func (g *WebhookGateway) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if len(g.secret) > 0 {
		req.Header.Set(SignatureHeader, Sign(g.secret, body))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

// Sign считает подпись тела вебхука.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает подпись за постоянное время.
func Verify(secret, body []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}

	// сетевые ошибки получателя
	return true
}

func (g *WebhookGateway) executeWithMetrics(ctx context.Context, kind string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatus(err)
	GatewayRequestDuration.WithLabelValues(serviceName, kind, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, kind, status).Inc()
	}

	return err
}

func getStatus(err error) string {
	if err == nil {
		return "OK"
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "TRANSPORT"
}
