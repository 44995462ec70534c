package delivery

import "errors"

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidParams     = errors.New("invalid params")
	ErrInvalidPhone      = errors.New("invalid phone number")

	ErrPickupWindowTooSmall        = errors.New("pickup window too small")
	ErrDropoffDeadlineBeforePickup = errors.New("dropoff deadline before pickup deadline")
	ErrDropoffReadyAfterPickup     = errors.New("dropoff ready after pickup deadline")

	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrDuplicateDelivery  = errors.New("delivery already exists")
	ErrFieldNotEditable   = errors.New("field cannot be updated")
	ErrNoncancelable      = errors.New("delivery cannot be canceled")
	ErrProofNotAvailable  = errors.New("proof of delivery not available")
	ErrUndefinedStatus    = errors.New("no transition for status")
	ErrCourierUnavailable = errors.New("courier unavailable")
)
