package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

const (
	idPrefix = "del_"

	defaultListLimit = 20
	maxListLimit     = 100

	eventsBatchSize = 100
)

// TransitionFn переводит доставку в следующий статус и возвращает изменения.
type TransitionFn func(ctx context.Context, delivery entities.Delivery, now time.Time) (entities.DeliveryModify, error)

type Delivery struct {
	repository     Repository
	quoteService   QuoteService
	courierService CourierService
	transitions    TransitionFactory
	notifier       Notifier
	txManager      TxManager
	clock          Clock
}

func New(
	repository Repository,
	quoteService QuoteService,
	courierService CourierService,
	transitions TransitionFactory,
	notifier Notifier,
	txManager TxManager,
	clock Clock,
) *Delivery {
	return &Delivery{
		repository:     repository,
		quoteService:   quoteService,
		courierService: courierService,
		transitions:    transitions,
		notifier:       notifier,
		txManager:      txManager,
		clock:          clock,
	}
}

// CreateDelivery создает доставку. Повторный запрос с тем же idempotency_key
// возвращает ранее созданную доставку без изменений.
func (d *Delivery) CreateDelivery(ctx context.Context, customerID string, req models.CreateDeliveryRequest) (*entities.Delivery, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if !isValidPhone(req.PickupPhoneNumber) {
		return nil, fmt.Errorf("%w: pickup_phone_number %q", ErrInvalidPhone, req.PickupPhoneNumber)
	}
	if !isValidPhone(req.DropoffPhoneNumber) {
		return nil, fmt.Errorf("%w: dropoff_phone_number %q", ErrInvalidPhone, req.DropoffPhoneNumber)
	}
	if err := validateTimeWindows(req); err != nil {
		return nil, err
	}

	var created *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		key := pointer.Get(req.IdempotencyKey)
		if key != "" {
			existing, err := d.repository.GetByIdempotencyKey(ctx, customerID, key)
			switch {
			case err == nil:
				created = existing
				return nil
			case !errors.Is(err, ErrDeliveryNotFound):
				return fmt.Errorf("get delivery by idempotency key: %w", err)
			}
		}

		now := d.clock.Now()
		delivery := newDelivery(customerID, req, now)
		delivery.ID = idPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
		delivery.Fee, delivery.Currency = d.quoteService.Estimate(delivery.ManifestTotalValue)

		if delivery.QuoteID != "" {
			quote, err := d.quoteService.ConsumeQuote(ctx, customerID, delivery.QuoteID, delivery.ID)
			if err != nil {
				return err
			}
			delivery.Fee = quote.Fee
			delivery.Currency = quote.Currency
			delivery.DropoffEta = quote.DropoffEta
			if req.DropoffDeadlineDt == nil {
				delivery.DropoffDeadline = quote.DropoffDeadline
			}
		}

		var err error
		created, err = d.repository.Create(ctx, delivery)
		if err != nil {
			err = fmt.Errorf("create delivery: %w", err)
			if delivery.QuoteID != "" {
				releaseErr := d.quoteService.ReleaseQuote(ctx, customerID, delivery.QuoteID, delivery.ID)
				err = errors.Join(err, releaseErr)
			}
			return err
		}

		return d.addStatusEvent(ctx, *created, now)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (d *Delivery) GetDelivery(ctx context.Context, customerID, deliveryID string) (*entities.Delivery, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := d.repository.Get(ctx, customerID, deliveryID)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	return delivery, nil
}

// UpdateDelivery меняет только поля, разрешенные в текущем статусе доставки.
func (d *Delivery) UpdateDelivery(ctx context.Context, customerID, deliveryID string, req models.UpdateDeliveryRequest) (*entities.Delivery, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.Get(ctx, customerID, deliveryID)
		if err != nil {
			return err
		}

		if err = checkEditable(current.Status, req); err != nil {
			return err
		}

		modify := toDeliveryModify(req)
		modify.ID = &current.ID
		modify.UpdatedAt = pointer.To(d.clock.Now())

		updated, err = d.repository.Update(ctx, customerID, modify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelDelivery отменяет активную доставку и освобождает курьера.
func (d *Delivery) CancelDelivery(ctx context.Context, customerID, deliveryID string) (*entities.Delivery, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	var canceled *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.Get(ctx, customerID, deliveryID)
		if err != nil {
			return err
		}
		if current.Status.Terminal() {
			return fmt.Errorf("%w: delivery is %s", ErrNoncancelable, current.Status)
		}

		if current.Courier != nil {
			if err = d.courierService.ReleaseCourier(ctx, current.Courier.ID, &current.Courier.Location); err != nil {
				return fmt.Errorf("release courier: %w", err)
			}
		}

		now := d.clock.Now()
		canceled, err = d.repository.Update(ctx, customerID, entities.DeliveryModify{
			ID:        &current.ID,
			Status:    pointer.To(models.StatusCanceled),
			UpdatedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		return d.addStatusEvent(ctx, *canceled, now)
	})
	if err != nil {
		return nil, err
	}

	return canceled, nil
}

// ListDeliveries возвращает страницу доставок и общее число доставок под фильтром.
func (d *Delivery) ListDeliveries(ctx context.Context, customerID string, req models.ListDeliveriesRequest) ([]entities.Delivery, int, error) {
	if !isValidCustomerID(customerID) {
		return nil, 0, ErrInvalidCustomerID
	}
	if err := models.Validate(req); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	filter := entities.DeliveryFilter{
		CustomerID: customerID,
		Limit:      defaultListLimit,
		Offset:     pointer.Get(req.Offset),
	}
	if req.Limit != nil {
		filter.Limit = min(*req.Limit, maxListLimit)
	}
	if req.Filter != nil {
		filter.Statuses = expandStatusFilter(*req.Filter)
	}

	deliveries, total, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}

	return deliveries, total, nil
}

// AdvanceRoboCouriers двигает каждую доставку с роботом-курьером на один статус вперед.
// Возвращает число продвинутых доставок.
func (d *Delivery) AdvanceRoboCouriers(ctx context.Context) (int64, error) {
	deliveries, err := d.repository.ListRoboCourierActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list robo courier deliveries: %w", err)
	}

	var (
		advanced int64
		errs     []error
	)
	for _, delivery := range deliveries {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		var moved bool
		err = d.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			moved, err = d.advance(ctx, delivery.CustomerID, delivery.ID)
			return err
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("advance delivery %s: %w", delivery.ID, err))
			continue
		}
		if moved {
			advanced++
		}
	}

	return advanced, errors.Join(errs...)
}

func (d *Delivery) advance(ctx context.Context, customerID, deliveryID string) (bool, error) {
	// доставку могли отменить после выборки
	current, err := d.repository.Get(ctx, customerID, deliveryID)
	if err != nil {
		return false, err
	}
	if current.Status.Terminal() {
		return false, nil
	}

	handler, err := d.transitions.GetHandler(current.Status)
	if err != nil {
		return false, err
	}

	now := d.clock.Now()
	modify, err := handler(ctx, *current, now)
	if err != nil {
		if errors.Is(err, ErrCourierUnavailable) {
			return false, nil
		}
		return false, err
	}
	modify.ID = &current.ID
	modify.UpdatedAt = &now

	updated, err := d.repository.Update(ctx, customerID, modify)
	if err != nil {
		return false, fmt.Errorf("update delivery: %w", err)
	}

	return true, d.addStatusEvent(ctx, *updated, now)
}

// DispatchStatusEvents отправляет накопленные события вебхуком.
// Неотправленные события возвращаются в очередь.
func (d *Delivery) DispatchStatusEvents(ctx context.Context) (int64, error) {
	if !d.notifier.Enabled() {
		return 0, nil
	}

	events, err := d.repository.PopStatusEvents(ctx, eventsBatchSize)
	if err != nil {
		return 0, fmt.Errorf("pop status events: %w", err)
	}

	var (
		sent   int64
		failed []entities.StatusEvent
		errs   []error
	)
	for i, event := range events {
		if ctx.Err() != nil {
			failed = append(failed, events[i:]...)
			errs = append(errs, ctx.Err())
			break
		}

		if err = d.notifier.SendDeliveryStatus(ctx, event); err != nil {
			failed = append(failed, event)
			errs = append(errs, fmt.Errorf("send %s for %s: %w", event.Status, event.DeliveryID, err))
			continue
		}
		sent++
	}

	if len(failed) > 0 {
		// контекст мог уже истечь, возвращаем события в любом случае
		if err = d.repository.RequeueStatusEvents(context.WithoutCancel(ctx), failed); err != nil {
			errs = append(errs, fmt.Errorf("requeue status events: %w", err))
		}
	}

	return sent, errors.Join(errs...)
}

func (d *Delivery) addStatusEvent(ctx context.Context, delivery entities.Delivery, now time.Time) error {
	err := d.repository.AddStatusEvent(ctx, entities.StatusEvent{
		Kind:       models.WebhookKindDeliveryStatus,
		DeliveryID: delivery.ID,
		CustomerID: delivery.CustomerID,
		Status:     delivery.Status,
		Delivery:   delivery,
		CreatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("add status event: %w", err)
	}
	return nil
}

func expandStatusFilter(status models.Status) []models.Status {
	if status != models.StatusOngoing {
		return []models.Status{status}
	}
	return []models.Status{
		models.StatusPending,
		models.StatusPickup,
		models.StatusPickupComplete,
		models.StatusDropoff,
	}
}
