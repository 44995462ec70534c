package delivery

import (
	"time"

	"github.com/AlekSi/pointer"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

const (
	pickupWindow    = 30 * time.Minute
	dropoffWindow   = 60 * time.Minute
	pickupDuration  = 10 * time.Minute
	deliverDuration = 40 * time.Minute
)

func newDelivery(customerID string, req models.CreateDeliveryRequest, now time.Time) entities.Delivery {
	delivery := entities.Delivery{
		CustomerID:     customerID,
		QuoteID:        pointer.Get(req.QuoteID),
		IdempotencyKey: pointer.Get(req.IdempotencyKey),
		Status:         models.StatusPending,
		Tip:            pointer.Get(req.Tip),
		Pickup: entities.Waypoint{
			Name:            req.PickupName,
			PhoneNumber:     req.PickupPhoneNumber,
			Address:         req.PickupAddress,
			BusinessName:    pointer.Get(req.PickupBusinessName),
			Notes:           pointer.Get(req.PickupNotes),
			ExternalStoreID: pointer.Get(req.ExternalStoreID),
			Location:        toLatLng(req.PickupLatitude, req.PickupLongitude),
			Verification:    req.PickupVerification,
		},
		Dropoff: entities.Waypoint{
			Name:         req.DropoffName,
			PhoneNumber:  req.DropoffPhoneNumber,
			Address:      req.DropoffAddress,
			BusinessName: pointer.Get(req.DropoffBusinessName),
			Notes:        pointer.Get(req.DropoffNotes),
			SellerNotes:  pointer.Get(req.DropoffSellerNotes),
			Location:     toLatLng(req.DropoffLatitude, req.DropoffLongitude),
			Verification: req.DropoffVerification,
		},
		ReturnVerification:       req.ReturnVerification,
		ManifestItems:            req.ManifestItems,
		ManifestReference:        pointer.Get(req.ManifestReference),
		ManifestDescription:      pointer.Get(req.Manifest),
		ManifestTotalValue:       pointer.Get(req.ManifestTotalValue),
		DeliverableAction:        models.DeliverableActionMeetAtDoor,
		UndeliverableAction:      pointer.Get(req.UndeliverableAction),
		RequiresDropoffSignature: pointer.Get(req.RequiresDropoffSignature),
		RequiresID:               pointer.Get(req.RequiresID),
		RoboCourier:              isRoboCourierAuto(req.TestSpecifications),
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if req.DeliverableAction != nil {
		delivery.DeliverableAction = *req.DeliverableAction
	}

	delivery.PickupReady = now
	if req.PickupReadyDt != nil && req.PickupReadyDt.After(now) {
		delivery.PickupReady = req.PickupReadyDt.UTC()
	}
	delivery.PickupDeadline = delivery.PickupReady.Add(pickupWindow)
	if req.PickupDeadlineDt != nil {
		delivery.PickupDeadline = req.PickupDeadlineDt.UTC()
	}
	delivery.DropoffReady = delivery.PickupReady
	if req.DropoffReadyDt != nil {
		delivery.DropoffReady = req.DropoffReadyDt.UTC()
	}
	delivery.DropoffDeadline = delivery.PickupReady.Add(dropoffWindow)
	if req.DropoffDeadlineDt != nil {
		delivery.DropoffDeadline = req.DropoffDeadlineDt.UTC()
	}
	delivery.PickupEta = delivery.PickupReady.Add(pickupDuration)
	delivery.DropoffEta = delivery.PickupReady.Add(deliverDuration)

	return delivery
}

func toDeliveryModify(req models.UpdateDeliveryRequest) entities.DeliveryModify {
	return entities.DeliveryModify{
		Tip:                      req.TipByCustomer,
		ManifestReference:        req.ManifestReference,
		PickupNotes:              req.PickupNotes,
		DropoffNotes:             req.DropoffNotes,
		DropoffSellerNotes:       req.DropoffSellerNotes,
		DropoffLocation:          toLatLng(req.DropoffLatitude, req.DropoffLongitude),
		PickupVerification:       req.PickupVerification,
		DropoffVerification:      req.DropoffVerification,
		RequiresDropoffSignature: req.RequiresDropoffSignature,
		RequiresID:               req.RequiresID,
	}
}

func toLatLng(lat, lng *float64) *models.LatLng {
	if lat == nil || lng == nil {
		return nil
	}
	return &models.LatLng{Lat: *lat, Lng: *lng}
}

// custom режим робота управляется вручную и сам не двигается
func isRoboCourierAuto(spec *models.TestSpecifications) bool {
	return spec != nil &&
		spec.RoboCourierSpecification != nil &&
		spec.RoboCourierSpecification.Mode == models.RoboCourierModeAuto
}
