package delivery

import (
	"slices"

	"uberdirect/internal/entities"
)

// cloneDelivery отвязывает запись хранилища от копии, которую видит вызывающий.
func cloneDelivery(d entities.Delivery) entities.Delivery {
	d.ManifestItems = slices.Clone(d.ManifestItems)
	if d.Courier != nil {
		c := *d.Courier
		d.Courier = &c
	}
	return d
}

func applyModify(d *entities.Delivery, modify entities.DeliveryModify) {
	if modify.Status != nil {
		d.Status = *modify.Status
	}
	if modify.Tip != nil {
		d.Tip = *modify.Tip
	}
	if modify.ManifestReference != nil {
		d.ManifestReference = *modify.ManifestReference
	}
	if modify.PickupNotes != nil {
		d.Pickup.Notes = *modify.PickupNotes
	}
	if modify.DropoffNotes != nil {
		d.Dropoff.Notes = *modify.DropoffNotes
	}
	if modify.DropoffSellerNotes != nil {
		d.Dropoff.SellerNotes = *modify.DropoffSellerNotes
	}
	if modify.DropoffLocation != nil {
		location := *modify.DropoffLocation
		d.Dropoff.Location = &location
	}
	if modify.PickupVerification != nil {
		d.Pickup.Verification = modify.PickupVerification
	}
	if modify.DropoffVerification != nil {
		d.Dropoff.Verification = modify.DropoffVerification
	}
	if modify.PickupProof != nil {
		d.Pickup.Proof = modify.PickupProof
	}
	if modify.DropoffProof != nil {
		d.Dropoff.Proof = modify.DropoffProof
	}
	if modify.RequiresDropoffSignature != nil {
		d.RequiresDropoffSignature = *modify.RequiresDropoffSignature
	}
	if modify.RequiresID != nil {
		d.RequiresID = *modify.RequiresID
	}
	if modify.Courier != nil {
		c := *modify.Courier
		d.Courier = &c
	}
	if modify.PickupEta != nil {
		d.PickupEta = *modify.PickupEta
	}
	if modify.DropoffEta != nil {
		d.DropoffEta = *modify.DropoffEta
	}
	if modify.UpdatedAt != nil {
		d.UpdatedAt = *modify.UpdatedAt
	}
}
