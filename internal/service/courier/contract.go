//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"uberdirect/internal/entities"
)

type Repository interface {
	// ClaimAvailable атомарно находит свободного курьера и помечает его занятым.
	ClaimAvailable(ctx context.Context) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
}
