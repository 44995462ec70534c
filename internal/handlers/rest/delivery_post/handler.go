package delivery_post

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

// Handler частично обновляет доставку. Какие поля можно менять, зависит от статуса.
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
	vars := mux.Vars(r)

	var req models.UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, "invalid request body: "+err.Error())
		return
	}

	delivery, err := h.service.UpdateDelivery(r.Context(), vars["customer_id"], vars["delivery_id"], req)
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("delivery_id", delivery.ID),
		logger.NewField("status", delivery.Status),
	).Debug("delivery updated")

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse(*delivery))
}
