//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_transition_test
package status_transition

import (
	"context"
	"time"

	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

type CourierService interface {
	AssignCourier(ctx context.Context) (*entities.Courier, error)
	ReleaseCourier(ctx context.Context, id int64, location *models.LatLng) error
}

type EtaFactory interface {
	CalculateEta(vehicleType entities.VehicleType, baseTime time.Time) time.Time
}
