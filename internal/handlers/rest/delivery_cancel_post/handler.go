package delivery_cancel_post

import (
	"net/http"

	"github.com/gorilla/mux"
	"uberdirect/internal/pkg/dto"
	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/logger"
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
	vars := mux.Vars(r)

	delivery, err := h.service.CancelDelivery(r.Context(), vars["customer_id"], vars["delivery_id"])
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("customer_id", delivery.CustomerID),
		logger.NewField("delivery_id", delivery.ID),
	).Info("delivery canceled")

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryResponse(*delivery))
}
