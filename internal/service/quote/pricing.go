package quote

import "time"

const (
	Currency = "usd"

	// базовая стоимость и 1% от стоимости посылки, в центах
	baseFee         = 599
	valueFeePercent = 1

	quoteTTL        = 15 * time.Minute
	pickupDuration  = 10 * time.Minute
	deliverDuration = 40 * time.Minute
	dropoffWindow   = 60 * time.Minute
)

// EstimateFee - стоимость доставки посылки стоимостью manifestTotalValue центов.
func EstimateFee(manifestTotalValue int) int {
	if manifestTotalValue < 0 {
		manifestTotalValue = 0
	}
	return baseFee + manifestTotalValue*valueFeePercent/100
}
