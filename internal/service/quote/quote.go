package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

const idPrefix = "dqt_"

type Quote struct {
	repository Repository
	clock      Clock
}

func New(repository Repository, clock Clock) *Quote {
	return &Quote{
		repository: repository,
		clock:      clock,
	}
}

func (q *Quote) CreateQuote(ctx context.Context, customerID string, req models.CreateQuoteRequest) (*entities.Quote, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	now := q.clock.Now()
	quote := entities.Quote{
		ID:              idPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
		CustomerID:      customerID,
		Fee:             EstimateFee(pointer.Get(req.ManifestTotalValue)),
		Currency:        Currency,
		CreatedAt:       now,
		ExpiresAt:       now.Add(quoteTTL),
		DropoffEta:      now.Add(deliverDuration),
		DropoffDeadline: now.Add(dropoffWindow),
		Duration:        deliverDuration,
		PickupDuration:  pickupDuration,
		ExternalStoreID: pointer.Get(req.ExternalStoreID),
	}
	if req.PickupReadyDt != nil && req.PickupReadyDt.After(now) {
		quote.DropoffEta = req.PickupReadyDt.Add(deliverDuration)
	}
	if req.DropoffDeadlineDt != nil {
		quote.DropoffDeadline = req.DropoffDeadlineDt.Time
	}

	created, err := q.repository.Create(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	return created, nil
}

// ConsumeQuote помечает котировку использованной доставкой deliveryID.
// Котировку можно использовать один раз и только до истечения.
func (q *Quote) ConsumeQuote(ctx context.Context, customerID, quoteID, deliveryID string) (*entities.Quote, error) {
	quote, err := q.repository.Get(ctx, customerID, quoteID)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrQuoteNotFound, quoteID)
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if quote.Used() {
		return nil, fmt.Errorf("%w: %s", ErrQuoteUsed, quoteID)
	}
	if quote.Expired(q.clock.Now()) {
		return nil, fmt.Errorf("%w: %s", ErrQuoteExpired, quoteID)
	}

	err = q.repository.MarkUsed(ctx, customerID, quoteID, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("mark quote used: %w", err)
	}

	quote.DeliveryID = deliveryID
	return quote, nil
}

// ReleaseQuote возвращает котировку, если доставку deliveryID не удалось сохранить.
func (q *Quote) ReleaseQuote(ctx context.Context, customerID, quoteID, deliveryID string) error {
	if err := q.repository.MarkUnused(ctx, customerID, quoteID, deliveryID); err != nil {
		return fmt.Errorf("release quote: %w", err)
	}
	return nil
}

// Estimate - стоимость доставки, созданной без котировки.
func (q *Quote) Estimate(manifestTotalValue int) (int, string) {
	return EstimateFee(manifestTotalValue), Currency
}

func (q *Quote) CleanupExpiredQuotes(ctx context.Context) (int64, error) {
	deleted, err := q.repository.DeleteExpired(ctx, q.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("cleanup quotes: %w", err)
	}
	return deleted, nil
}

func isValidCustomerID(customerID string) bool {
	return strings.TrimSpace(customerID) != ""
}
