package dto

import (
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

// Courier - робот-курьер в ответе служебного эндпоинта песочницы.
type Courier struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Status      string        `json:"status"`
	VehicleType string        `json:"vehicle_type"`
	Location    models.LatLng `json:"location"`
}

func CourierList(couriers []entities.Courier) []Courier {
	result := make([]Courier, 0, len(couriers))
	for _, c := range couriers {
		result = append(result, Courier{
			ID:          c.ID,
			Name:        c.Name,
			PhoneNumber: c.PhoneNumber,
			Status:      c.Status.String(),
			VehicleType: c.VehicleType.String(),
			Location:    c.Location,
		})
	}
	return result
}

type PingResponse struct {
	Message string `json:"message"`
}
