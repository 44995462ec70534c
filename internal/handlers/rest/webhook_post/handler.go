package webhook_post

import (
	"io"
	"net/http"

	"uberdirect/internal/gateway/webhook"
	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

const maxBodyBytes = 1 << 20

// Handler принимает вебхуки Uber Direct: проверяет подпись, разбирает событие и пишет его в лог.
// Пустой секрет отключает проверку подписи.
type Handler struct {
	log    handlerLogger
	secret []byte
}

func New(log handlerLogger, secret string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		secret: []byte(secret),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, "cannot read request body")
		return
	}

	if len(h.secret) > 0 && !webhook.Verify(h.secret, body, r.Header.Get(webhook.SignatureHeader)) {
		WebhooksReceivedTotal.WithLabelValues("unknown", "bad_signature").Inc()
		h.log.With(logger.NewField("remote_addr", r.RemoteAddr)).Warn("webhook signature mismatch")
		response.Error(w, h.log, http.StatusUnauthorized, uberr.APICodeUnauthorized, "invalid webhook signature")
		return
	}

	event, err := models.ParseWebhook(body)
	if err != nil {
		WebhooksReceivedTotal.WithLabelValues("unknown", "bad_payload").Inc()
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, err.Error())
		return
	}

	WebhooksReceivedTotal.WithLabelValues(event.Kind, "ok").Inc()
	h.log.With(eventFields(event)...).Info("webhook received")

	w.WriteHeader(http.StatusOK)
}

func eventFields(event *models.WebhookEvent) []logger.Field {
	fields := []logger.Field{logger.NewField("kind", event.Kind)}

	switch {
	case event.DeliveryStatus != nil:
		fields = append(fields,
			logger.NewField("event_id", event.DeliveryStatus.ID),
			logger.NewField("status", event.DeliveryStatus.Status),
		)
		if event.DeliveryStatus.DeliveryID != nil {
			fields = append(fields, logger.NewField("delivery_id", *event.DeliveryStatus.DeliveryID))
		}
	case event.CourierUpdate != nil:
		if event.CourierUpdate.DeliveryID != nil {
			fields = append(fields, logger.NewField("delivery_id", *event.CourierUpdate.DeliveryID))
		}
		if event.CourierUpdate.Location != nil {
			fields = append(fields, logger.NewField("location", *event.CourierUpdate.Location))
		}
	}

	return fields
}
