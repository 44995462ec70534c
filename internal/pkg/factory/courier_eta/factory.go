package courier_eta

import (
	"time"

	"uberdirect/internal/entities"
)

type CourierEtaFactory struct{}

func New() *CourierEtaFactory {
	return &CourierEtaFactory{}
}

// CalculateEta - когда курьер доберется до следующей точки, выйдя в baseTime.
func (f *CourierEtaFactory) CalculateEta(vehicleType entities.VehicleType, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch vehicleType {
	case entities.Walker:
		resultTime = resultTime.Add(time.Minute * 15)
	case entities.Bicycle:
		resultTime = resultTime.Add(time.Minute * 10)
	case entities.Car:
		resultTime = resultTime.Add(time.Minute * 5)
	default:
		resultTime = resultTime.Add(time.Minute * 15)
	}

	return resultTime
}
