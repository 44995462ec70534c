package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"uberdirect/internal/entities"
	"uberdirect/internal/service/quote"
)

type key struct {
	customerID string
	quoteID    string
}

type Repository struct {
	mu     sync.RWMutex
	quotes map[key]entities.Quote
}

func New() *Repository {
	return &Repository{
		quotes: make(map[key]entities.Quote),
	}
}

func (r *Repository) Create(_ context.Context, q entities.Quote) (*entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{customerID: q.CustomerID, quoteID: q.ID}
	if _, ok := r.quotes[k]; ok {
		return nil, fmt.Errorf("unexpected quote repository create error: duplicate id %s", q.ID)
	}

	r.quotes[k] = q
	return &q, nil
}

// Get ищет котировку только среди котировок клиента customerID.
func (r *Repository) Get(_ context.Context, customerID, quoteID string) (*entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[key{customerID: customerID, quoteID: quoteID}]
	if !ok {
		return nil, quote.ErrQuoteNotFound
	}
	return &q, nil
}

func (r *Repository) MarkUsed(_ context.Context, customerID, quoteID, deliveryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{customerID: customerID, quoteID: quoteID}
	q, ok := r.quotes[k]
	if !ok {
		return quote.ErrQuoteNotFound
	}
	if q.Used() {
		return quote.ErrQuoteUsed
	}

	q.DeliveryID = deliveryID
	r.quotes[k] = q
	return nil
}

// MarkUnused снимает отметку, только если котировка занята доставкой deliveryID.
func (r *Repository) MarkUnused(_ context.Context, customerID, quoteID, deliveryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{customerID: customerID, quoteID: quoteID}
	q, ok := r.quotes[k]
	if !ok {
		return quote.ErrQuoteNotFound
	}
	if q.DeliveryID != deliveryID {
		return nil
	}

	q.DeliveryID = ""
	r.quotes[k] = q
	return nil
}

func (r *Repository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for k, q := range r.quotes {
		if q.Expired(now) {
			delete(r.quotes, k)
			deleted++
		}
	}
	return deleted, nil
}
