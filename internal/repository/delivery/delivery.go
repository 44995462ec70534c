package delivery

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"uberdirect/internal/entities"
	"uberdirect/internal/service/delivery"
)

type key struct {
	customerID string
	value      string
}

type Repository struct {
	mu          sync.RWMutex
	deliveries  map[key]entities.Delivery
	idempotency map[key]string
	// очередь событий для вебхуков
	events []entities.StatusEvent
}

func New() *Repository {
	return &Repository{
		deliveries:  make(map[key]entities.Delivery),
		idempotency: make(map[key]string),
	}
}

func (r *Repository) Create(_ context.Context, d entities.Delivery) (*entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{customerID: d.CustomerID, value: d.ID}
	if _, ok := r.deliveries[k]; ok {
		return nil, delivery.ErrDuplicateDelivery
	}

	if d.IdempotencyKey != "" {
		ik := key{customerID: d.CustomerID, value: d.IdempotencyKey}
		if _, ok := r.idempotency[ik]; ok {
			return nil, fmt.Errorf("%w: idempotency key %s", delivery.ErrDuplicateDelivery, d.IdempotencyKey)
		}
		r.idempotency[ik] = d.ID
	}

	r.deliveries[k] = cloneDelivery(d)

	created := cloneDelivery(d)
	return &created, nil
}

func (r *Repository) Get(_ context.Context, customerID, deliveryID string) (*entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.get(customerID, deliveryID)
}

func (r *Repository) GetByIdempotencyKey(_ context.Context, customerID, idempotencyKey string) (*entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deliveryID, ok := r.idempotency[key{customerID: customerID, value: idempotencyKey}]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}
	return r.get(customerID, deliveryID)
}

func (r *Repository) get(customerID, deliveryID string) (*entities.Delivery, error) {
	d, ok := r.deliveries[key{customerID: customerID, value: deliveryID}]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}

	result := cloneDelivery(d)
	return &result, nil
}

func (r *Repository) Update(_ context.Context, customerID string, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ID == nil {
		return nil, delivery.ErrInvalidDeliveryID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{customerID: customerID, value: *deliveryModify.ID}
	d, ok := r.deliveries[k]
	if !ok {
		return nil, delivery.ErrDeliveryNotFound
	}

	applyModify(&d, deliveryModify)
	r.deliveries[k] = d

	result := cloneDelivery(d)
	return &result, nil
}

// List - доставки клиента от новых к старым. Limit <= 0 означает без ограничения.
func (r *Repository) List(_ context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entities.Delivery, 0, 8)
	for k, d := range r.deliveries {
		if k.customerID != filter.CustomerID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, d.Status) {
			continue
		}
		matched = append(matched, d)
	}

	slices.SortFunc(matched, func(a, b entities.Delivery) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	total := len(matched)
	if filter.Offset >= total {
		return []entities.Delivery{}, total, nil
	}
	page := matched[filter.Offset:]
	if filter.Limit > 0 && len(page) > filter.Limit {
		page = page[:filter.Limit]
	}

	result := make([]entities.Delivery, len(page))
	for i, d := range page {
		result[i] = cloneDelivery(d)
	}
	return result, total, nil
}

// ListRoboCourierActive - незавершенные доставки с роботом-курьером, старые первыми.
func (r *Repository) ListRoboCourierActive(_ context.Context) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Delivery, 0, 8)
	for _, d := range r.deliveries {
		if d.RoboCourier && !d.Status.Terminal() {
			result = append(result, cloneDelivery(d))
		}
	}

	slices.SortFunc(result, func(a, b entities.Delivery) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *Repository) AddStatusEvent(_ context.Context, event entities.StatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.Delivery = cloneDelivery(event.Delivery)
	r.events = append(r.events, event)
	return nil
}

// PopStatusEvents забирает из очереди до limit самых старых событий.
func (r *Repository) PopStatusEvents(_ context.Context, limit int) ([]entities.StatusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(limit, len(r.events))
	if n <= 0 {
		return nil, nil
	}

	popped := slices.Clone(r.events[:n])
	r.events = slices.Delete(r.events, 0, n)
	return popped, nil
}

// RequeueStatusEvents возвращает события в начало очереди в исходном порядке.
func (r *Repository) RequeueStatusEvents(_ context.Context, events []entities.StatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(slices.Clone(events), r.events...)
	return nil
}
