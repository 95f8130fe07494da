package delivery_self_receive_post

import (
	"encoding/json"
	"net/http"

	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/response"
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
	orderID, ok := response.PathInt64(r, "order_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var claimDTO dto.SelfReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&claimDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.SelfReceive(r.Context(), claimDTO.ServiceId, orderID); err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
