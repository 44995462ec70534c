package models

type CreateQuoteRequest struct {
	PickupAddress      string         `json:"pickup_address" validate:"required"`
	DropoffAddress     string         `json:"dropoff_address" validate:"required"`
	PickupLatitude     *float64       `json:"pickup_latitude,omitempty" validate:"omitempty,latitude"`
	PickupLongitude    *float64       `json:"pickup_longitude,omitempty" validate:"omitempty,longitude"`
	DropoffLatitude    *float64       `json:"dropoff_latitude,omitempty" validate:"omitempty,latitude"`
	DropoffLongitude   *float64       `json:"dropoff_longitude,omitempty" validate:"omitempty,longitude"`
	PickupReadyDt      *LocalDateTime `json:"pickup_ready_dt,omitempty"`
	PickupDeadlineDt   *LocalDateTime `json:"pickup_deadline_dt,omitempty"`
	DropoffReadyDt     *LocalDateTime `json:"dropoff_ready_dt,omitempty"`
	DropoffDeadlineDt  *LocalDateTime `json:"dropoff_deadline_dt,omitempty"`
	PickupPhoneNumber  *string        `json:"pickup_phone_number,omitempty"`
	DropoffPhoneNumber *string        `json:"dropoff_phone_number,omitempty"`
	ManifestTotalValue *int           `json:"manifest_total_value,omitempty" validate:"omitempty,gte=0"`
	ExternalStoreID    *string        `json:"external_store_id,omitempty"`
}

// CreateQuoteResponse - все поля опциональны, Uber опускает незаполненные.
// ID начинается с dqt_, Fee в минимальных единицах валюты, Duration и PickupDuration в минутах.
type CreateQuoteResponse struct {
	Kind            *string        `json:"kind,omitempty"`
	ID              *string        `json:"id,omitempty"`
	Created         *LocalDateTime `json:"created,omitempty"`
	Expires         *LocalDateTime `json:"expires,omitempty"`
	Fee             *int           `json:"fee,omitempty"`
	Currency        *string        `json:"currency,omitempty"`
	CurrencyType    *string        `json:"currency_type,omitempty"`
	DropoffEta      *LocalDateTime `json:"dropoff_eta,omitempty"`
	DropoffDeadline *LocalDateTime `json:"dropoff_deadline,omitempty"`
	Duration        *int           `json:"duration,omitempty"`
	PickupDuration  *int           `json:"pickup_duration,omitempty"`
	ExternalStoreID *string        `json:"external_store_id,omitempty"`
}
