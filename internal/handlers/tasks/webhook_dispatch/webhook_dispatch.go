package webhook_dispatch

import (
	"context"
	"time"

	"uberdirect/pkg/logger"
)

// WebhookDispatch отправляет накопленные события смены статуса на адрес вебхуков.
// Неотправленные события остаются в очереди до следующего тика.
type WebhookDispatch struct {
	log      taskLogger
	service  Service
	interval time.Duration
	sent     int64
}

func NewWebhookDispatch(log taskLogger, service Service, interval time.Duration) *WebhookDispatch {
	return &WebhookDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (w *WebhookDispatch) TTL() time.Duration {
	return w.interval
}

func (w *WebhookDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	sent, err := w.service.DispatchStatusEvents(ctxWithTimeout)
	if sent > 0 {
		w.sent += sent
		w.log.With(
			logger.NewField("sent", sent),
			logger.NewField("sent_total", w.sent),
		).Debug("webhooks dispatched")
	}

	return err
}

func (w *WebhookDispatch) Info() string {
	return "webhook dispatch"
}
