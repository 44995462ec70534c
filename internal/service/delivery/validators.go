package delivery

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"uberdirect/pkg/uberdirect/models"
)

const minPickupWindow = 10 * time.Minute

func isValidCustomerID(customerID string) bool {
	return strings.TrimSpace(customerID) != ""
}

func isValidDeliveryID(deliveryID string) bool {
	return strings.TrimSpace(deliveryID) != ""
}

// isValidPhone - номер в формате E.164: + и только цифры.
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// validateTimeWindows проверяет только пары времен, заданные в запросе.
func validateTimeWindows(req models.CreateDeliveryRequest) error {
	if req.PickupReadyDt != nil && req.PickupDeadlineDt != nil &&
		req.PickupDeadlineDt.Sub(req.PickupReadyDt.Time) < minPickupWindow {
		return ErrPickupWindowTooSmall
	}
	if req.PickupDeadlineDt != nil && req.DropoffDeadlineDt != nil &&
		req.DropoffDeadlineDt.Before(req.PickupDeadlineDt.Time) {
		return ErrDropoffDeadlineBeforePickup
	}
	if req.PickupDeadlineDt != nil && req.DropoffReadyDt != nil &&
		req.DropoffReadyDt.After(req.PickupDeadlineDt.Time) {
		return ErrDropoffReadyAfterPickup
	}
	return nil
}

var (
	untilPickup         = []models.Status{models.StatusPending, models.StatusPickup}
	untilPickupComplete = []models.Status{models.StatusPending, models.StatusPickup, models.StatusPickupComplete}
	untilDropoff        = []models.Status{models.StatusPending, models.StatusPickup, models.StatusPickupComplete, models.StatusDropoff}
	afterDropoff        = []models.Status{models.StatusDropoff, models.StatusDelivered}
)

// editableFields - в каких статусах можно менять поле доставки.
var editableFields = map[string][]models.Status{
	"manifest_reference":         untilPickup,
	"pickup_notes":               untilPickup,
	"dropoff_latitude":           untilPickup,
	"dropoff_longitude":          untilPickup,
	"pickup_verification":        untilPickupComplete,
	"dropoff_notes":              untilDropoff,
	"dropoff_seller_notes":       untilDropoff,
	"dropoff_verification":       untilDropoff,
	"requires_dropoff_signature": untilDropoff,
	"requires_id":                untilDropoff,
	"tip_by_customer":            afterDropoff,
}

func requestedFields(req models.UpdateDeliveryRequest) []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}

	add(req.ManifestReference != nil, "manifest_reference")
	add(req.PickupNotes != nil, "pickup_notes")
	add(req.DropoffLatitude != nil, "dropoff_latitude")
	add(req.DropoffLongitude != nil, "dropoff_longitude")
	add(req.PickupVerification != nil, "pickup_verification")
	add(req.DropoffNotes != nil, "dropoff_notes")
	add(req.DropoffSellerNotes != nil, "dropoff_seller_notes")
	add(req.DropoffVerification != nil, "dropoff_verification")
	add(req.RequiresDropoffSignature != nil, "requires_dropoff_signature")
	add(req.RequiresID != nil, "requires_id")
	add(req.TipByCustomer != nil, "tip_by_customer")
	return fields
}

func checkEditable(status models.Status, req models.UpdateDeliveryRequest) error {
	if (req.DropoffLatitude == nil) != (req.DropoffLongitude == nil) {
		return fmt.Errorf("%w: dropoff_latitude and dropoff_longitude must be set together", ErrInvalidParams)
	}

	for _, field := range requestedFields(req) {
		if !slices.Contains(editableFields[field], status) {
			return fmt.Errorf("%w: %s in status %s", ErrFieldNotEditable, field, status)
		}
	}
	return nil
}
