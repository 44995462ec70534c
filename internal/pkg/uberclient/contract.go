//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=uberclient_test
package uberclient

import (
	"context"

	"uberdirect/pkg/uberdirect/models"
)

type Authenticator interface {
	Authenticate(ctx context.Context, req models.AuthRequest) (*models.AuthResponse, error)
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
