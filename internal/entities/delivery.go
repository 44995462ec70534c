package entities

import (
	"time"

	"uberdirect/pkg/uberdirect/models"
)

type Waypoint struct {
	Name            string
	PhoneNumber     string
	Address         string
	BusinessName    string
	Notes           string
	SellerNotes     string
	ExternalStoreID string
	Location        *models.LatLng
	Verification    *models.VerificationRequirement
	// Proof заполняет курьер при прохождении точки
	Proof *models.VerificationProof
}

type Delivery struct {
	ID             string
	CustomerID     string
	QuoteID        string
	IdempotencyKey string
	ExternalID     string
	Status         models.Status

	Fee      int
	Currency string
	Tip      int

	Pickup             Waypoint
	Dropoff            Waypoint
	ReturnVerification *models.VerificationRequirement

	ManifestItems       []models.ManifestItem
	ManifestReference   string
	ManifestDescription string
	ManifestTotalValue  int

	DeliverableAction        models.DeliverableAction
	UndeliverableAction      models.UndeliverableAction
	RequiresDropoffSignature bool
	RequiresID               bool

	RoboCourier bool
	// снимок назначенного курьера
	Courier *Courier

	PickupReady     time.Time
	PickupDeadline  time.Time
	DropoffReady    time.Time
	DropoffDeadline time.Time
	PickupEta       time.Time
	DropoffEta      time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeliveryModify - частичное изменение доставки, nil поля не трогаются.
type DeliveryModify struct {
	ID                       *string
	Status                   *models.Status
	Tip                      *int
	ManifestReference        *string
	PickupNotes              *string
	DropoffNotes             *string
	DropoffSellerNotes       *string
	DropoffLocation          *models.LatLng
	PickupVerification       *models.VerificationRequirement
	DropoffVerification      *models.VerificationRequirement
	PickupProof              *models.VerificationProof
	DropoffProof             *models.VerificationProof
	RequiresDropoffSignature *bool
	RequiresID               *bool
	Courier                  *Courier
	PickupEta                *time.Time
	DropoffEta               *time.Time
	UpdatedAt                *time.Time
}

type DeliveryFilter struct {
	CustomerID string
	// пустой список - все статусы
	Statuses []models.Status
	Limit    int
	Offset   int
}

// StatusEvent - запись об изменении статуса, ждет отправки вебхуком.
type StatusEvent struct {
	Kind       string
	DeliveryID string
	CustomerID string
	Status     models.Status
	Delivery   Delivery
	CreatedAt  time.Time
}
