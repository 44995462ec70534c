package delivery_quotes_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"uberdirect/internal/pkg/dto"
	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customer_id"]

	var req models.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, "invalid request body: "+err.Error())
		return
	}

	quote, err := h.service.CreateQuote(r.Context(), customerID, req)
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("customer_id", customerID),
		logger.NewField("quote_id", quote.ID),
		logger.NewField("fee", quote.Fee),
	).Debug("quote created")

	response.JSON(w, h.log, http.StatusOK, dto.QuoteResponse(*quote))
}
