package delivery

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/AlekSi/pointer"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

// прозрачный PNG 1x1, им песочница отдает фото и подписи
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// ProofOfDelivery возвращает документ, собранный курьером на точке.
// Документ есть только у завершенной доставки и только если на точке требовалось подтверждение.
func (d *Delivery) ProofOfDelivery(ctx context.Context, customerID, deliveryID string, req models.PODRetrievalRequest) ([]byte, error) {
	if !isValidCustomerID(customerID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidDeliveryID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	delivery, err := d.GetDelivery(ctx, customerID, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.Status != models.StatusDelivered {
		return nil, fmt.Errorf("%w: delivery is %s", ErrProofNotAvailable, delivery.Status)
	}

	requirement, proof := waypointProof(delivery, req.Waypoint)
	if !required(requirement, req.Type) {
		return nil, fmt.Errorf("%w: %s was not required at %s", ErrProofNotAvailable, req.Type, req.Waypoint)
	}
	if proof == nil {
		return nil, fmt.Errorf("%w: nothing collected at %s", ErrProofNotAvailable, req.Waypoint)
	}

	return renderProof(proof, req.Type)
}

func waypointProof(delivery *entities.Delivery, waypoint models.Waypoint) (*models.VerificationRequirement, *models.VerificationProof) {
	switch waypoint {
	case models.WaypointPickup:
		return delivery.Pickup.Verification, delivery.Pickup.Proof
	case models.WaypointDropoff:
		return delivery.Dropoff.Verification, delivery.Dropoff.Proof
	default:
		// роботы песочницы не возвращают посылки
		return delivery.ReturnVerification, nil
	}
}

func required(requirement *models.VerificationRequirement, proofType models.ProofType) bool {
	if requirement == nil {
		return false
	}

	switch proofType {
	case models.ProofTypePicture:
		return pointer.Get(requirement.Picture)
	case models.ProofTypeSignature:
		return pointer.Get(requirement.Signature) ||
			(requirement.SignatureRequirement != nil && requirement.SignatureRequirement.Enabled)
	case models.ProofTypePincode:
		return requirement.Pincode != nil && requirement.Pincode.Enabled
	default:
		return false
	}
}

func renderProof(proof *models.VerificationProof, proofType models.ProofType) ([]byte, error) {
	if proofType == models.ProofTypePincode {
		if proof.PinCode == nil || proof.PinCode.Entered == nil {
			return nil, fmt.Errorf("%w: pincode was not entered", ErrProofNotAvailable)
		}
		return []byte(*proof.PinCode.Entered), nil
	}

	document, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		return nil, fmt.Errorf("decode placeholder document: %w", err)
	}
	return document, nil
}
