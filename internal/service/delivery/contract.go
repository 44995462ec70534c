//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	Get(ctx context.Context, customerID, deliveryID string) (*entities.Delivery, error)
	GetByIdempotencyKey(ctx context.Context, customerID, key string) (*entities.Delivery, error)
	Update(ctx context.Context, customerID string, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, int, error)
	ListRoboCourierActive(ctx context.Context) ([]entities.Delivery, error)

	AddStatusEvent(ctx context.Context, event entities.StatusEvent) error
	PopStatusEvents(ctx context.Context, limit int) ([]entities.StatusEvent, error)
	RequeueStatusEvents(ctx context.Context, events []entities.StatusEvent) error
}

type QuoteService interface {
	Estimate(manifestTotalValue int) (fee int, currency string)
	ConsumeQuote(ctx context.Context, customerID, quoteID, deliveryID string) (*entities.Quote, error)
	ReleaseQuote(ctx context.Context, customerID, quoteID, deliveryID string) error
}

type CourierService interface {
	ReleaseCourier(ctx context.Context, id int64, location *models.LatLng) error
}

type TransitionFactory interface {
	GetHandler(status models.Status) (TransitionFn, error)
}

type Notifier interface {
	Enabled() bool
	SendDeliveryStatus(ctx context.Context, event entities.StatusEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
