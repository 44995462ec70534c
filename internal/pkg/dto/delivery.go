package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

// DeliveryResponse - доставка в формате ответов create, get, update, cancel и list.
func DeliveryResponse(d entities.Delivery) models.DeliveryResponse {
	return models.DeliveryResponse{
		Complete:            pointer.To(d.Status.Terminal()),
		Courier:             CourierInfo(d.Courier),
		CourierImminent:     pointer.To(d.Status == models.StatusDropoff),
		Created:             localTime(d.CreatedAt),
		Currency:            optString(d.Currency),
		DeliverableAction:   optValue(d.DeliverableAction),
		Dropoff:             waypointInfo(d.Dropoff),
		DropoffDeadline:     localTime(d.DropoffDeadline),
		DropoffEta:          localTime(d.DropoffEta),
		DropoffReady:        localTime(d.DropoffReady),
		ExternalID:          optString(d.ExternalID),
		Fee:                 pointer.To(d.Fee),
		ID:                  pointer.To(d.ID),
		Kind:                pointer.To(models.KindDelivery),
		LiveMode:            pointer.To(false),
		Manifest:            manifestInfo(d),
		ManifestItems:       d.ManifestItems,
		Pickup:              waypointInfo(d.Pickup),
		PickupDeadline:      localTime(d.PickupDeadline),
		PickupEta:           localTime(d.PickupEta),
		PickupReady:         localTime(d.PickupReady),
		QuoteID:             optString(d.QuoteID),
		Status:              pointer.To(d.Status),
		Tip:                 pointer.To(d.Tip),
		UndeliverableAction: optString(string(d.UndeliverableAction)),
		Updated:             localTime(d.UpdatedAt),
		UUID:                pointer.To(strings.TrimPrefix(d.ID, "del_")),
	}
}

// DeliveryData - снимок доставки внутри вебхука.
func DeliveryData(d entities.Delivery) models.DeliveryData {
	return models.DeliveryData{
		ID:                  pointer.To(d.ID),
		Status:              pointer.To(d.Status),
		Complete:            pointer.To(d.Status.Terminal()),
		Courier:             CourierInfo(d.Courier),
		CourierImminent:     pointer.To(d.Status == models.StatusDropoff),
		Created:             localTime(d.CreatedAt),
		Updated:             localTime(d.UpdatedAt),
		Currency:            optString(d.Currency),
		Fee:                 pointer.To(d.Fee),
		Dropoff:             waypointInfo(d.Dropoff),
		DropoffEta:          localTime(d.DropoffEta),
		Pickup:              waypointInfo(d.Pickup),
		PickupEta:           localTime(d.PickupEta),
		ManifestItems:       d.ManifestItems,
		ExternalID:          optString(d.ExternalID),
		DeliverableAction:   optValue(d.DeliverableAction),
		UndeliverableAction: optValue(d.UndeliverableAction),
	}
}

func CourierInfo(c *entities.Courier) *models.CourierInfo {
	if c == nil {
		return nil
	}

	location := c.Location
	return &models.CourierInfo{
		Name:        optString(c.Name),
		VehicleType: optString(c.VehicleType.String()),
		PhoneNumber: optString(c.PhoneNumber),
		Location:    &location,
	}
}

func waypointInfo(w entities.Waypoint) *models.WaypointInfo {
	return &models.WaypointInfo{
		Name:                     optString(w.Name),
		PhoneNumber:              optString(w.PhoneNumber),
		Address:                  optString(w.Address),
		DetailedAddress:          detailedAddress(w.Address),
		Notes:                    optString(w.Notes),
		SellerNotes:              optString(w.SellerNotes),
		Location:                 w.Location,
		Verification:             w.Proof,
		VerificationRequirements: w.Verification,
		ExternalStoreID:          optString(w.ExternalStoreID),
	}
}

// detailedAddress раскладывает адрес, если он пришел структурой в виде JSON строки.
func detailedAddress(address string) *models.StructuredAddressResponse {
	if !strings.HasPrefix(strings.TrimSpace(address), "{") {
		return nil
	}

	var structured models.StructuredAddress
	if err := json.Unmarshal([]byte(address), &structured); err != nil || len(structured.StreetAddress) == 0 {
		return nil
	}
	return pointer.To(structured.ToResponse())
}

func manifestInfo(d entities.Delivery) *models.ManifestInfo {
	return &models.ManifestInfo{
		Reference:   optString(d.ManifestReference),
		Description: optString(d.ManifestDescription),
		TotalValue:  pointer.To(d.ManifestTotalValue),
	}
}

func localTime(t time.Time) *models.LocalDateTime {
	if t.IsZero() {
		return nil
	}
	return models.NewLocalDateTime(t).Ptr()
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optValue[T ~string](v T) *T {
	if v == "" {
		return nil
	}
	return &v
}
