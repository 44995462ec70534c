package courier

import (
	"context"
	"errors"
	"fmt"

	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

// AssignCourier забирает свободного робота-курьера под доставку.
func (s *Courier) AssignCourier(ctx context.Context) (*entities.Courier, error) {
	courier, err := s.repository.ClaimAvailable(ctx)
	if err != nil {
		if errors.Is(err, ErrNoAvailableCouriers) {
			return nil, err
		}
		return nil, fmt.Errorf("claim courier: %w", err)
	}

	return courier, nil
}

// ReleaseCourier освобождает курьера в точке, где закончилась доставка.
func (s *Courier) ReleaseCourier(ctx context.Context, id int64, location *models.LatLng) error {
	if !isValidCourierID(id) {
		return ErrInvalidCourierID
	}

	available := entities.CourierAvailable
	_, err := s.repository.Update(ctx, entities.CourierModify{
		ID:       &id,
		Status:   &available,
		Location: location,
	})
	if err != nil {
		return fmt.Errorf("update courier status: %w", err)
	}

	return nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}
	return couriers, nil
}
