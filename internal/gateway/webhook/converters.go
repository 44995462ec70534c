package webhook

import (
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"uberdirect/internal/entities"
	"uberdirect/internal/pkg/dto"
	"uberdirect/pkg/uberdirect/models"
)

const eventIDPrefix = "evt_"

func toDeliveryStatus(event entities.StatusEvent) models.DeliveryStatus {
	data := dto.DeliveryData(event.Delivery)

	return models.DeliveryStatus{
		ID:         eventIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Status:     event.Status,
		Kind:       event.Kind,
		Created:    models.NewLocalDateTime(event.CreatedAt).Ptr(),
		LiveMode:   pointer.To(false),
		DeliveryID: pointer.To(event.DeliveryID),
		Data:       &data,
		CustomerID: pointer.To(event.CustomerID),
	}
}
