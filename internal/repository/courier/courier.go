package courier

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"uberdirect/internal/entities"
	"uberdirect/internal/service/courier"
	"uberdirect/pkg/uberdirect/models"
)

var vehicleTypes = []entities.VehicleType{entities.Walker, entities.Bicycle, entities.Car}

// начальная точка флота, Market St в Сан-Франциско
var depot = models.LatLng{Lat: 37.7749, Lng: -122.4194}

// имена курьеров одинаковые между запусками песочницы
const fleetSeed = 2026

type Repository struct {
	mu       sync.RWMutex
	couriers map[int64]entities.Courier
}

func New(fleet []entities.Courier) *Repository {
	r := &Repository{
		couriers: make(map[int64]entities.Courier, len(fleet)),
	}
	for _, c := range fleet {
		r.couriers[c.ID] = c
	}
	return r
}

// NewFleet создает size свободных роботов-курьеров с разным транспортом.
func NewFleet(size int, now time.Time) []entities.Courier {
	faker := gofakeit.New(fleetSeed)

	fleet := make([]entities.Courier, 0, size)
	for i := 1; i <= size; i++ {
		fleet = append(fleet, entities.Courier{
			ID:          int64(i),
			Name:        faker.FirstName() + " " + faker.LastName()[:1] + ".",
			PhoneNumber: fmt.Sprintf("+1555000%04d", i),
			Status:      entities.CourierAvailable,
			VehicleType: vehicleTypes[(i-1)%len(vehicleTypes)],
			Location:    depot,
			UpdatedAt:   now,
		})
	}
	return fleet
}

// ClaimAvailable помечает занятым свободного курьера с наименьшим id.
func (r *Repository) ClaimAvailable(_ context.Context) (*entities.Courier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.couriers))
	for id, c := range r.couriers {
		if c.Status == entities.CourierAvailable {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, courier.ErrNoAvailableCouriers
	}

	c := r.couriers[slices.Min(ids)]
	c.Status = entities.CourierBusy
	r.couriers[c.ID] = c
	return &c, nil
}

func (r *Repository) Update(_ context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, courier.ErrInvalidCourierID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.couriers[*courierModify.ID]
	if !ok {
		return nil, courier.ErrCourierNotFound
	}

	// опциональные поля
	if courierModify.Status != nil {
		c.Status = *courierModify.Status
	}
	if courierModify.Location != nil {
		c.Location = *courierModify.Location
	}

	r.couriers[c.ID] = c
	return &c, nil
}

func (r *Repository) GetAll(_ context.Context) ([]entities.Courier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Courier, 0, len(r.couriers))
	for _, c := range r.couriers {
		result = append(result, c)
	}
	slices.SortFunc(result, func(a, b entities.Courier) int {
		return int(a.ID - b.ID)
	})
	return result, nil
}
