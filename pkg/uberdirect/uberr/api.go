package uberr

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Коды бизнес-ошибок, которые Uber Direct присылает в теле ответа.
const (
	APICodeInvalidParams               = "invalid_params"
	APICodeUnknownLocation             = "unknown_location"
	APICodeAddressUndeliverable        = "address_undeliverable"
	APICodeExpiredQuote                = "expired_quote"
	APICodeUsedQuote                   = "used_quote"
	APICodeMismatchedPriceQuote        = "mismatched_price_quote"
	APICodeMissingPayment              = "missing_payment"
	APICodePickupReadyTimeNotInFuture  = "pickup_ready_time_not_in_future"
	APICodePickupWindowTooSmall        = "pickup_window_too_small"
	APICodeDropoffDeadlineTooEarly     = "dropoff_deadline_too_early"
	APICodeDropoffDeadlineBeforePickup = "dropoff_deadline_before_pickup_deadline"
	APICodeDropoffReadyAfterPickup     = "dropoff_ready_after_pickup_deadline"
	APICodePickupReadyTooEarly         = "pickup_ready_too_early"
	APICodePickupDeadlineTooEarly      = "pickup_deadline_too_early"
	APICodePickupReadyTooLate          = "pickup_ready_too_late"
	APICodeCustomerNotFound            = "customer_not_found"
	APICodeDeliveryNotFound            = "delivery_not_found"
	APICodeRequestTimeout              = "request_timeout"
	APICodeDuplicateDelivery           = "duplicate_delivery"
	APICodeCustomerSuspended           = "customer_suspended"
	APICodeCustomerBlocked             = "customer_blocked"
	APICodeAddressUndeliverableLimited = "address_undeliverable_limited_couriers"
	APICodeCustomerLimited             = "customer_limited"
	APICodeUnknownError                = "unknown_error"
	APICodeNoncancelableDelivery       = "noncancelable_delivery"
	APICodeServiceUnavailable          = "service_unavailable"
	APICodeUnauthorized                = "unauthorized"
	APICodeOAuthInvalidRequest         = "invalid_request"
	APICodeOAuthInvalidClient          = "invalid_client"
	APICodeOAuthInvalidScope           = "invalid_scope"
	APICodeOAuthServerError            = "server_error"
	APICodeOAuthUnsupportedGrantType   = "unsupported_grant_type"
	APICodeOAuthUnauthorizedClient     = "unauthorized_client"
)

var apiCodeKinds = map[string]Kind{
	APICodeDuplicateDelivery:           KindExists,
	APICodeCustomerNotFound:            KindNotFound,
	APICodeDeliveryNotFound:            KindNotFound,
	APICodeNoncancelableDelivery:       KindInvalidState,
	APICodeAddressUndeliverableLimited: KindInvalidState,
	APICodeExpiredQuote:                KindInvalidState,
	APICodeUsedQuote:                   KindInvalidState,
	APICodeRequestTimeout:              KindTimeout,
	APICodeCustomerSuspended:           KindForbidden,
	APICodeCustomerBlocked:             KindForbidden,
	APICodeCustomerLimited:             KindForbidden,
	APICodeUnauthorized:                KindUnauthorized,
	APICodeOAuthInvalidClient:          KindUnauthorized,
	APICodeOAuthUnauthorizedClient:     KindUnauthorized,
	APICodeOAuthInvalidRequest:         KindBadInput,
	APICodeOAuthInvalidScope:           KindBadInput,
	APICodeOAuthUnsupportedGrantType:   KindBadInput,
	APICodeOAuthServerError:            KindInternalServerError,
	APICodeUnknownError:                KindInternalServerError,
	APICodeServiceUnavailable:          KindInternalServerError,
}

// APIError - тело ошибки Uber Direct. OAuth сервер использует поля error/error_description.
type APIError struct {
	Code             string         `json:"code,omitempty"`
	Message          string         `json:"message,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	OAuthError       string         `json:"error,omitempty"`
	ErrorDescription string         `json:"error_description,omitempty"`
}

// FromResponse строит ошибку по статусу и телу не-2xx ответа.
// Сначала смотрим на код из тела, потом на HTTP статус. Reason phrase не используется.
func FromResponse(status int, body []byte) *Error {
	var apiErr APIError
	// тело может быть не JSON (например, html от балансировщика), тогда остается только статус
	_ = json.Unmarshal(body, &apiErr)

	code := apiErr.Code
	msg := apiErr.Message
	if code == "" {
		code = apiErr.OAuthError
		msg = apiErr.ErrorDescription
	}
	if code == "" && msg == "" {
		msg = strings.TrimSpace(string(body))
	}

	return &Error{
		Kind:    kindFromResponse(status, code),
		Message: msg,
		Status:  status,
		APICode: code,
	}
}

func kindFromResponse(status int, code string) Kind {
	if kind, ok := apiCodeKinds[code]; ok {
		return kind
	}
	if strings.HasSuffix(code, "_not_found") {
		return KindNotFound
	}

	switch {
	case status == http.StatusBadRequest:
		return KindBadInput
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusPaymentRequired, status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return KindTimeout
	case status == http.StatusConflict:
		return KindExists
	case status == http.StatusUnprocessableEntity:
		return KindInvalidState
	case status == http.StatusTooManyRequests:
		return KindForbidden
	case status == http.StatusNotImplemented:
		return KindNotImplemented
	case status >= http.StatusInternalServerError:
		return KindInternalServerError
	case status >= http.StatusBadRequest:
		return KindBadInput
	default:
		return KindInternalServerError
	}
}
