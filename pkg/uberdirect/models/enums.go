package models

// Status - статус доставки.
//
// Основной путь: pending -> pickup -> pickup_complete -> dropoff -> delivered.
// Из любого активного статуса доставка может уйти в canceled или returned.
// ongoing используется как фильтр списка и покрывает все активные статусы.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPickup         Status = "pickup"
	StatusPickupComplete Status = "pickup_complete"
	StatusDropoff        Status = "dropoff"
	StatusDelivered      Status = "delivered"
	StatusCanceled       Status = "canceled"
	StatusReturned       Status = "returned"
	StatusOngoing        Status = "ongoing"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPickup, StatusPickupComplete, StatusDropoff,
		StatusDelivered, StatusCanceled, StatusReturned, StatusOngoing:
		return true
	default:
		return false
	}
}

// Terminal - из этих статусов доставка уже никуда не переходит.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled || s == StatusReturned
}

func (s Status) String() string {
	return string(s)
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXLarge Size = "xlarge"

	// sizeBig - устаревшее название large, встречается в старых ответах.
	sizeBig = "big"
)

func (s *Size) UnmarshalText(b []byte) error {
	if string(b) == sizeBig {
		*s = SizeLarge
		return nil
	}
	*s = Size(b)
	return nil
}

type DeliverableAction string

const (
	DeliverableActionMeetAtDoor  DeliverableAction = "deliverable_action_meet_at_door"
	DeliverableActionLeaveAtDoor DeliverableAction = "deliverable_action_leave_at_door"
)

type UndeliverableAction string

const (
	UndeliverableActionLeaveAtDoor UndeliverableAction = "leave_at_door"
	UndeliverableActionReturn      UndeliverableAction = "return"
)

type Waypoint string

const (
	WaypointPickup  Waypoint = "pickup"
	WaypointDropoff Waypoint = "dropoff"
	WaypointReturn  Waypoint = "return"
)

type ProofType string

const (
	ProofTypePicture   ProofType = "picture"
	ProofTypeSignature ProofType = "signature"
	ProofTypePincode   ProofType = "pincode"
)

const (
	RoboCourierModeAuto   = "auto"
	RoboCourierModeCustom = "custom"
)

const (
	KindDeliveryQuote = "delivery_quote"
	KindDelivery      = "delivery"
	ObjectList        = "list"
)
