package deliveries_get

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"uberdirect/internal/pkg/dto"
	"uberdirect/internal/pkg/response"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

const listObject = "list"

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

	req, err := parseQuery(r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, err.Error())
		return
	}

	deliveries, total, err := h.service.ListDeliveries(r.Context(), customerID, req)
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	data := make([]models.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		data = append(data, dto.DeliveryResponse(d))
	}

	resp := models.ListDeliveriesResponse{
		Data:       data,
		Object:     pointer.To(listObject),
		TotalCount: pointer.To(total),
		URL:        pointer.To(r.URL.Path),
	}

	// next_href есть, пока за текущей страницей остаются доставки
	offset := pointer.Get(req.Offset)
	if next := offset + len(deliveries); len(deliveries) > 0 && next < total {
		q := r.URL.Query()
		q.Set("offset", strconv.Itoa(next))
		resp.NextHref = pointer.To(r.URL.Path + "?" + q.Encode())
	}

	response.JSON(w, h.log, http.StatusOK, resp)
}

func parseQuery(q url.Values) (models.ListDeliveriesRequest, error) {
	var req models.ListDeliveriesRequest

	if v := q.Get("filter"); v != "" {
		req.Filter = pointer.To(models.Status(v))
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return req, uberr.Wrap(uberr.KindBadInput, "limit must be an integer", err)
		}
		req.Limit = &limit
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return req, uberr.Wrap(uberr.KindBadInput, "offset must be an integer", err)
		}
		req.Offset = &offset
	}

	return req, nil
}
