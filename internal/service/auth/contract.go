//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"uberdirect/internal/entities"
)

type Repository interface {
	Save(ctx context.Context, token entities.Token) error
	Get(ctx context.Context, value string) (*entities.Token, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Clock interface {
	Now() time.Time
}
