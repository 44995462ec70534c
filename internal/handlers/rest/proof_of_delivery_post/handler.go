package proof_of_delivery_post

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"uberdirect/internal/pkg/response"
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
	vars := mux.Vars(r)

	var req models.PODRetrievalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, uberr.APICodeInvalidParams, "invalid request body: "+err.Error())
		return
	}

	document, err := h.service.ProofOfDelivery(r.Context(), vars["customer_id"], vars["delivery_id"], req)
	if err != nil {
		response.ServiceError(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, models.PODRetrievalResponse{
		Document: pointer.To(base64.StdEncoding.EncodeToString(document)),
	})
}
