package couriers_get

import (
	"net/http"

	"uberdirect/internal/pkg/dto"
	"uberdirect/internal/pkg/response"
)

// Handler отдает состояние флота робо-курьеров песочницы.
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
	couriers, err := h.service.GetCouriers(r.Context())
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.CourierList(couriers))
}
