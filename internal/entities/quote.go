package entities

import "time"

type Quote struct {
	ID              string
	CustomerID      string
	Fee             int
	Currency        string
	CreatedAt       time.Time
	ExpiresAt       time.Time
	DropoffEta      time.Time
	DropoffDeadline time.Time
	Duration        time.Duration
	PickupDuration  time.Duration
	ExternalStoreID string
	// DeliveryID заполняется, когда котировка использована
	DeliveryID string
}

func (q *Quote) Expired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

func (q *Quote) Used() bool {
	return q.DeliveryID != ""
}
