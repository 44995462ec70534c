package dto

import (
	"strings"

	"github.com/AlekSi/pointer"
	"uberdirect/internal/entities"
	"uberdirect/pkg/uberdirect/models"
)

func QuoteResponse(q entities.Quote) models.CreateQuoteResponse {
	return models.CreateQuoteResponse{
		Kind:            pointer.To(models.KindDeliveryQuote),
		ID:              pointer.To(q.ID),
		Created:         localTime(q.CreatedAt),
		Expires:         localTime(q.ExpiresAt),
		Fee:             pointer.To(q.Fee),
		Currency:        optString(q.Currency),
		CurrencyType:    optString(strings.ToUpper(q.Currency)),
		DropoffEta:      localTime(q.DropoffEta),
		DropoffDeadline: localTime(q.DropoffDeadline),
		Duration:        pointer.To(int(q.Duration.Minutes())),
		PickupDuration:  pointer.To(int(q.PickupDuration.Minutes())),
		ExternalStoreID: optString(q.ExternalStoreID),
	}
}
