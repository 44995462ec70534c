package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"uberdirect/internal/service/delivery"
	"uberdirect/internal/service/quote"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/uberr"
)

const contentTypeJSON = "application/json"

type writerLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log writerLogger, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет ошибку в формате Uber Direct: {"code": ..., "message": ...}.
func Error(w http.ResponseWriter, log writerLogger, status int, code, message string) {
	JSON(w, log, status, uberr.APIError{
		Code:    code,
		Message: message,
	})
}

// OAuthError пишет ошибку в формате OAuth сервера: {"error": ..., "error_description": ...}.
func OAuthError(w http.ResponseWriter, log writerLogger, status int, code, description string) {
	JSON(w, log, status, uberr.APIError{
		OAuthError:       code,
		ErrorDescription: description,
	})
}

type apiError struct {
	target error
	status int
	code   string
}

// порядок важен: более узкие ошибки раньше общих
var serviceErrors = []apiError{
	{delivery.ErrPickupWindowTooSmall, http.StatusBadRequest, uberr.APICodePickupWindowTooSmall},
	{delivery.ErrDropoffDeadlineBeforePickup, http.StatusBadRequest, uberr.APICodeDropoffDeadlineBeforePickup},
	{delivery.ErrDropoffReadyAfterPickup, http.StatusBadRequest, uberr.APICodeDropoffReadyAfterPickup},
	{delivery.ErrDeliveryNotFound, http.StatusNotFound, uberr.APICodeDeliveryNotFound},
	{delivery.ErrDuplicateDelivery, http.StatusConflict, uberr.APICodeDuplicateDelivery},
	{delivery.ErrNoncancelable, http.StatusBadRequest, uberr.APICodeNoncancelableDelivery},
	{delivery.ErrInvalidCustomerID, http.StatusNotFound, uberr.APICodeCustomerNotFound},
	{delivery.ErrInvalidDeliveryID, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{delivery.ErrInvalidParams, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{delivery.ErrInvalidPhone, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{delivery.ErrFieldNotEditable, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{delivery.ErrProofNotAvailable, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{quote.ErrQuoteUsed, http.StatusBadRequest, uberr.APICodeUsedQuote},
	{quote.ErrQuoteExpired, http.StatusBadRequest, uberr.APICodeExpiredQuote},
	{quote.ErrQuoteNotFound, http.StatusBadRequest, uberr.APICodeExpiredQuote},
	{quote.ErrInvalidCustomerID, http.StatusNotFound, uberr.APICodeCustomerNotFound},
	{quote.ErrInvalidParams, http.StatusBadRequest, uberr.APICodeInvalidParams},
	{context.DeadlineExceeded, http.StatusRequestTimeout, uberr.APICodeRequestTimeout},
}

// StatusAndCode сопоставляет ошибку сервиса с HTTP статусом и кодом Uber Direct.
func StatusAndCode(err error) (int, string) {
	for _, e := range serviceErrors {
		if errors.Is(err, e.target) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, uberr.APICodeUnknownError
}

// ServiceError пишет ошибку сервиса. Текст внутренних ошибок наружу не отдается.
func ServiceError(w http.ResponseWriter, log writerLogger, err error) {
	status, code := StatusAndCode(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("internal error", logger.NewField("error", err))
		message = "An unknown error occurred."
	}

	Error(w, log, status, code, message)
}
