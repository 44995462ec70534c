package entities

import (
	"time"

	"uberdirect/pkg/uberdirect/models"
)

// Courier - робот-курьер песочницы.
type Courier struct {
	ID          int64
	Name        string
	PhoneNumber string
	Status      CourierStatusType
	VehicleType VehicleType
	Location    models.LatLng
	UpdatedAt   time.Time
}

type VehicleType string

const (
	Walker  VehicleType = "walker"
	Bicycle VehicleType = "bicycle"
	Car     VehicleType = "car"
)

const DefaultVehicleType = Walker

func (t VehicleType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
)

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID       *int64
	Status   *CourierStatusType
	Location *models.LatLng
}
