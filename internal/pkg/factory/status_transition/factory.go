package status_transition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"uberdirect/internal/entities"
	"uberdirect/internal/service/courier"
	"uberdirect/internal/service/delivery"
	"uberdirect/pkg/uberdirect/models"
)

const roboSignerName = "Robo Courier"

type StatusTransitionFactory struct {
	courierService CourierService
	etaFactory     EtaFactory
}

func NewStatusTransitionFactory(courierService CourierService, etaFactory EtaFactory) *StatusTransitionFactory {
	return &StatusTransitionFactory{
		courierService: courierService,
		etaFactory:     etaFactory,
	}
}

// GetHandler возвращает переход из status в следующий статус основного пути.
func (f *StatusTransitionFactory) GetHandler(status models.Status) (delivery.TransitionFn, error) {
	switch status {
	case models.StatusPending:
		return f.pendingHandler, nil
	case models.StatusPickup:
		return f.pickupHandler, nil
	case models.StatusPickupComplete:
		return f.pickupCompleteHandler, nil
	case models.StatusDropoff:
		return f.dropoffHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", delivery.ErrUndefinedStatus, status)
	}
}

func (f *StatusTransitionFactory) pendingHandler(ctx context.Context, d entities.Delivery, now time.Time) (entities.DeliveryModify, error) {
	assigned, err := f.courierService.AssignCourier(ctx)
	if err != nil {
		if errors.Is(err, courier.ErrNoAvailableCouriers) {
			return entities.DeliveryModify{}, fmt.Errorf("%w: %w", delivery.ErrCourierUnavailable, err)
		}
		return entities.DeliveryModify{}, fmt.Errorf("assign courier for delivery %s: %w", d.ID, err)
	}

	return entities.DeliveryModify{
		Status:    pointer.To(models.StatusPickup),
		Courier:   assigned,
		PickupEta: pointer.To(f.etaFactory.CalculateEta(assigned.VehicleType, now)),
	}, nil
}

func (f *StatusTransitionFactory) pickupHandler(_ context.Context, d entities.Delivery, now time.Time) (entities.DeliveryModify, error) {
	modify := entities.DeliveryModify{
		Status:      pointer.To(models.StatusPickupComplete),
		PickupProof: collectProof(d.Pickup.Verification),
	}

	if d.Courier != nil {
		modify.Courier = moveCourier(*d.Courier, d.Pickup.Location, now)
		modify.DropoffEta = pointer.To(f.etaFactory.CalculateEta(d.Courier.VehicleType, now))
	}
	return modify, nil
}

func (f *StatusTransitionFactory) pickupCompleteHandler(_ context.Context, _ entities.Delivery, _ time.Time) (entities.DeliveryModify, error) {
	return entities.DeliveryModify{
		Status: pointer.To(models.StatusDropoff),
	}, nil
}

func (f *StatusTransitionFactory) dropoffHandler(ctx context.Context, d entities.Delivery, now time.Time) (entities.DeliveryModify, error) {
	modify := entities.DeliveryModify{
		Status:       pointer.To(models.StatusDelivered),
		DropoffProof: collectProof(d.Dropoff.Verification),
	}

	if d.Courier != nil {
		moved := moveCourier(*d.Courier, d.Dropoff.Location, now)
		err := f.courierService.ReleaseCourier(ctx, moved.ID, &moved.Location)
		if err != nil {
			return entities.DeliveryModify{}, fmt.Errorf("release courier for delivered %s: %w", d.ID, err)
		}
		modify.Courier = moved
	}
	return modify, nil
}

func moveCourier(c entities.Courier, location *models.LatLng, now time.Time) *entities.Courier {
	if location != nil {
		c.Location = *location
	}
	c.UpdatedAt = now
	return &c
}

// collectProof - то, что робот "собрал" на точке по ее требованиям.
func collectProof(requirement *models.VerificationRequirement) *models.VerificationProof {
	if requirement == nil {
		return nil
	}

	proof := &models.VerificationProof{
		Barcodes: requirement.Barcodes,
	}
	if pointer.Get(requirement.Picture) {
		proof.Picture = &models.PictureProof{}
	}
	if pointer.Get(requirement.Signature) ||
		(requirement.SignatureRequirement != nil && requirement.SignatureRequirement.Enabled) {
		proof.Signature = &models.SignatureProof{SignerName: pointer.To(roboSignerName)}
	}
	if requirement.Pincode != nil && requirement.Pincode.Enabled {
		proof.PinCode = &models.PincodeProof{Entered: pointer.To(requirement.Pincode.Value)}
	}
	if requirement.Identification != nil {
		proof.Identification = &models.IdentificationProof{MinAgeVerified: pointer.To(true)}
	}
	return proof
}
