//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"
	"time"

	"uberdirect/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, quote entities.Quote) (*entities.Quote, error)
	Get(ctx context.Context, customerID, quoteID string) (*entities.Quote, error)
	MarkUsed(ctx context.Context, customerID, quoteID, deliveryID string) error
	MarkUnused(ctx context.Context, customerID, quoteID, deliveryID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Clock interface {
	Now() time.Time
}
