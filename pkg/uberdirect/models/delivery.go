package models

// CreateDeliveryRequest - заявка на курьера. Обязательны только семь полей без omitempty,
// остальные при отсутствии в тело не попадают.
type CreateDeliveryRequest struct {
	DropoffAddress     string         `json:"dropoff_address" validate:"required"`
	DropoffName        string         `json:"dropoff_name" validate:"required"`
	DropoffPhoneNumber string         `json:"dropoff_phone_number" validate:"required"`
	ManifestItems      []ManifestItem `json:"manifest_items" validate:"required,min=1,dive"`
	PickupAddress      string         `json:"pickup_address" validate:"required"`
	PickupName         string         `json:"pickup_name" validate:"required"`
	PickupPhoneNumber  string         `json:"pickup_phone_number" validate:"required"`

	// Deprecated: Uber описывает посылку через manifest_items.
	Manifest *string `json:"manifest,omitempty"`

	DeliverableAction        *DeliverableAction       `json:"deliverable_action,omitempty" validate:"omitempty,oneof=deliverable_action_meet_at_door deliverable_action_leave_at_door"`
	DropoffBusinessName      *string                  `json:"dropoff_business_name,omitempty"`
	DropoffLatitude          *float64                 `json:"dropoff_latitude,omitempty" validate:"omitempty,latitude"`
	DropoffLongitude         *float64                 `json:"dropoff_longitude,omitempty" validate:"omitempty,longitude"`
	DropoffNotes             *string                  `json:"dropoff_notes,omitempty"`
	DropoffSellerNotes       *string                  `json:"dropoff_seller_notes,omitempty"`
	DropoffVerification      *VerificationRequirement `json:"dropoff_verification,omitempty"`
	ManifestReference        *string                  `json:"manifest_reference,omitempty"`
	ManifestTotalValue       *int                     `json:"manifest_total_value,omitempty" validate:"omitempty,gte=0"`
	PickupBusinessName       *string                  `json:"pickup_business_name,omitempty"`
	PickupLatitude           *float64                 `json:"pickup_latitude,omitempty" validate:"omitempty,latitude"`
	PickupLongitude          *float64                 `json:"pickup_longitude,omitempty" validate:"omitempty,longitude"`
	PickupNotes              *string                  `json:"pickup_notes,omitempty"`
	PickupVerification       *VerificationRequirement `json:"pickup_verification,omitempty"`
	QuoteID                  *string                  `json:"quote_id,omitempty"`
	UndeliverableAction      *UndeliverableAction     `json:"undeliverable_action,omitempty" validate:"omitempty,oneof=leave_at_door return"`
	PickupReadyDt            *LocalDateTime           `json:"pickup_ready_dt,omitempty"`
	PickupDeadlineDt         *LocalDateTime           `json:"pickup_deadline_dt,omitempty"`
	DropoffReadyDt           *LocalDateTime           `json:"dropoff_ready_dt,omitempty"`
	DropoffDeadlineDt        *LocalDateTime           `json:"dropoff_deadline_dt,omitempty"`
	RequiresDropoffSignature *bool                    `json:"requires_dropoff_signature,omitempty"`
	RequiresID               *bool                    `json:"requires_id,omitempty"`
	Tip                      *int                     `json:"tip,omitempty" validate:"omitempty,gte=0"`
	// IdempotencyKey передается как есть, клиент его не генерирует и не хранит.
	IdempotencyKey     *string                  `json:"idempotency_key,omitempty"`
	ExternalStoreID    *string                  `json:"external_store_id,omitempty"`
	ReturnVerification *VerificationRequirement `json:"return_verification,omitempty"`
	TestSpecifications *TestSpecifications      `json:"test_specifications,omitempty"`
}

// Contact - имя, адрес и телефон точки забора или доставки.
type Contact struct {
	Name        string
	Address     string
	PhoneNumber string
}

func NewCreateDeliveryRequest(pickup, dropoff Contact, items ...ManifestItem) CreateDeliveryRequest {
	return CreateDeliveryRequest{
		PickupName:         pickup.Name,
		PickupAddress:      pickup.Address,
		PickupPhoneNumber:  pickup.PhoneNumber,
		DropoffName:        dropoff.Name,
		DropoffAddress:     dropoff.Address,
		DropoffPhoneNumber: dropoff.PhoneNumber,
		ManifestItems:      items,
	}
}

// DeliveryResponse - доставка в том виде, как ее отдают create, get, update и cancel.
// Все поля опциональны: набор зависит от статуса доставки.
type DeliveryResponse struct {
	Complete            *bool              `json:"complete,omitempty"`
	Courier             *CourierInfo       `json:"courier,omitempty"`
	CourierImminent     *bool              `json:"courier_imminent,omitempty"`
	Created             *LocalDateTime     `json:"created,omitempty"`
	Currency            *string            `json:"currency,omitempty"`
	DeliverableAction   *DeliverableAction `json:"deliverable_action,omitempty"`
	Dropoff             *WaypointInfo      `json:"dropoff,omitempty"`
	DropoffDeadline     *LocalDateTime     `json:"dropoff_deadline,omitempty"`
	DropoffEta          *LocalDateTime     `json:"dropoff_eta,omitempty"`
	DropoffIdentifier   *string            `json:"dropoff_identifier,omitempty"`
	DropoffReady        *LocalDateTime     `json:"dropoff_ready,omitempty"`
	ExternalID          *string            `json:"external_id,omitempty"`
	Fee                 *int               `json:"fee,omitempty"`
	ID                  *string            `json:"id,omitempty"`
	Kind                *string            `json:"kind,omitempty"`
	LiveMode            *bool              `json:"live_mode,omitempty"`
	Manifest            *ManifestInfo      `json:"manifest,omitempty"`
	ManifestItems       []ManifestItem     `json:"manifest_items,omitempty"`
	Pickup              *WaypointInfo      `json:"pickup,omitempty"`
	PickupDeadline      *LocalDateTime     `json:"pickup_deadline,omitempty"`
	PickupEta           *LocalDateTime     `json:"pickup_eta,omitempty"`
	PickupReady         *LocalDateTime     `json:"pickup_ready,omitempty"`
	QuoteID             *string            `json:"quote_id,omitempty"`
	RelatedDeliveries   []RelatedDelivery  `json:"related_deliveries,omitempty"`
	Status              *Status            `json:"status,omitempty"`
	Tip                 *int               `json:"tip,omitempty"`
	TrackingURL         *string            `json:"tracking_url,omitempty"`
	UndeliverableAction *string            `json:"undeliverable_action,omitempty"`
	UndeliverableReason *string            `json:"undeliverable_reason,omitempty"`
	Updated             *LocalDateTime     `json:"updated,omitempty"`
	UUID                *string            `json:"uuid,omitempty"`
	ReturnWaypoint      *WaypointInfo      `json:"return,omitempty"`
}

type (
	CreateDeliveryResponse = DeliveryResponse
	GetDeliveryResponse    = DeliveryResponse
	UpdateDeliveryResponse = DeliveryResponse
	CancelDeliveryResponse = DeliveryResponse
)

// UpdateDeliveryRequest - частичное обновление, передаются только заполненные поля.
//
// Какие поля можно менять, решает Uber по текущему статусу доставки:
//
//	manifest_reference, pickup_notes, dropoff_latitude/longitude  pending, pickup
//	pickup_verification                                            pending .. pickup_complete
//	dropoff_notes, dropoff_seller_notes, dropoff_verification,
//	requires_dropoff_signature, requires_id                        pending .. dropoff
//	tip_by_customer                                                dropoff, delivered
//
// Клиент эти правила не проверяет, отказ сервера приходит ошибкой.
type UpdateDeliveryRequest struct {
	DropoffNotes             *string                  `json:"dropoff_notes,omitempty"`
	DropoffSellerNotes       *string                  `json:"dropoff_seller_notes,omitempty"`
	DropoffVerification      *VerificationRequirement `json:"dropoff_verification,omitempty"`
	ManifestReference        *string                  `json:"manifest_reference,omitempty"`
	PickupNotes              *string                  `json:"pickup_notes,omitempty"`
	PickupVerification       *VerificationRequirement `json:"pickup_verification,omitempty"`
	RequiresDropoffSignature *bool                    `json:"requires_dropoff_signature,omitempty"`
	RequiresID               *bool                    `json:"requires_id,omitempty"`
	TipByCustomer            *int                     `json:"tip_by_customer,omitempty" validate:"omitempty,gte=0"`
	DropoffLatitude          *float64                 `json:"dropoff_latitude,omitempty" validate:"omitempty,latitude"`
	DropoffLongitude         *float64                 `json:"dropoff_longitude,omitempty" validate:"omitempty,longitude"`
}
