package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"uberdirect/pkg/uberdirect/uberr"
)

const (
	WebhookKindDeliveryStatus = "event.delivery_status"
	WebhookKindDeliveryReturn = "event.delivery_return"
	WebhookKindCourierUpdate  = "event.courier_update"
)

// DeliveryStatus - вебхук об изменении статуса доставки. id и status приходят всегда.
type DeliveryStatus struct {
	ID          string         `json:"id"`
	Status      Status         `json:"status"`
	Kind        string         `json:"kind"`
	Created     *LocalDateTime `json:"created,omitempty"`
	LiveMode    *bool          `json:"live_mode,omitempty"`
	DeliveryID  *string        `json:"delivery_id,omitempty"`
	Data        *DeliveryData  `json:"data,omitempty"`
	CustomerID  *string        `json:"customer_id,omitempty"`
	DeveloperID *string        `json:"developer_id,omitempty"`
	AccountID   *string        `json:"account_id,omitempty"`
	RouteID     *string        `json:"route_id,omitempty"`
}

// CourierUpdate - вебхук с координатами курьера.
type CourierUpdate struct {
	Kind       string        `json:"kind"`
	Location   *LatLng       `json:"location,omitempty"`
	LiveMode   *bool         `json:"live_mode,omitempty"`
	DeliveryID *string       `json:"delivery_id,omitempty"`
	JobID      *string       `json:"job_id,omitempty"`
	Data       *DeliveryData `json:"data,omitempty"`
}

type DeliveryData struct {
	ID                  *string              `json:"id,omitempty"`
	Status              *Status              `json:"status,omitempty"`
	Complete            *bool                `json:"complete,omitempty"`
	Courier             *CourierInfo         `json:"courier,omitempty"`
	CourierImminent     *bool                `json:"courier_imminent,omitempty"`
	Created             *LocalDateTime       `json:"created,omitempty"`
	Updated             *LocalDateTime       `json:"updated,omitempty"`
	Currency            *string              `json:"currency,omitempty"`
	Fee                 *int                 `json:"fee,omitempty"`
	Dropoff             *WaypointInfo        `json:"dropoff,omitempty"`
	DropoffEta          *LocalDateTime       `json:"dropoff_eta,omitempty"`
	Pickup              *WaypointInfo        `json:"pickup,omitempty"`
	PickupEta           *LocalDateTime       `json:"pickup_eta,omitempty"`
	ManifestItems       []ManifestItem       `json:"manifest_items,omitempty"`
	TrackingURL         *string              `json:"tracking_url,omitempty"`
	UndeliverableReason *string              `json:"undeliverable_reason,omitempty"`
	RouteID             *string              `json:"route_id,omitempty"`
	Order               *OrderInfo           `json:"order,omitempty"`
	CancelationReason   *CancelationReason   `json:"cancelation_reason,omitempty"`
	ReturnWaypoint      *WaypointInfo        `json:"return,omitempty"`
	RelatedDeliveries   []RelatedDelivery    `json:"related_deliveries,omitempty"`
	ExternalID          *string              `json:"external_id,omitempty"`
	DeliverableAction   *DeliverableAction   `json:"deliverable_action,omitempty"`
	UndeliverableAction *UndeliverableAction `json:"undeliverable_action,omitempty"`
}

type OrderInfo struct {
	ID          *string `json:"id,omitempty"`
	Number      *string `json:"number,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

type CancelationReason struct {
	PrimaryReason   *string `json:"primary_reason,omitempty"`
	SecondaryReason *string `json:"secondary_reason,omitempty"`
}

// WebhookEvent - результат разбора входящего вебхука, заполнено ровно одно из полей.
type WebhookEvent struct {
	Kind           string
	DeliveryStatus *DeliveryStatus
	CourierUpdate  *CourierUpdate
}

// ParseWebhook декодирует тело вебхука по полю kind. Подпись не проверяется,
// это задача принимающего сервиса.
func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return nil, uberr.Wrap(uberr.KindJSON, "decode webhook", err)
	}

	event := &WebhookEvent{Kind: head.Kind}
	switch head.Kind {
	case WebhookKindDeliveryStatus, WebhookKindDeliveryReturn:
		event.DeliveryStatus = &DeliveryStatus{}
		if err := decodeWebhook(body, event.DeliveryStatus); err != nil {
			return nil, err
		}
		if err := event.DeliveryStatus.checkRequired(); err != nil {
			return nil, err
		}
	case WebhookKindCourierUpdate:
		event.CourierUpdate = &CourierUpdate{}
		if err := decodeWebhook(body, event.CourierUpdate); err != nil {
			return nil, err
		}
	default:
		return nil, uberr.New(uberr.KindBadInput, fmt.Sprintf("unknown webhook kind %q", head.Kind))
	}
	return event, nil
}

func decodeWebhook(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		var uerr *uberr.Error
		if errors.As(err, &uerr) {
			return err
		}
		return uberr.Wrap(uberr.KindJSON, "decode webhook", err)
	}
	return nil
}

// checkRequired проверяет только id и status верхнего уровня. Вложенные объекты -
// данные ответа Uber, любое их поле может отсутствовать.
func (s *DeliveryStatus) checkRequired() error {
	var missing []string
	if s.ID == "" {
		missing = append(missing, "id")
	}
	if s.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return uberr.New(uberr.KindBadInput, "webhook is missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}
