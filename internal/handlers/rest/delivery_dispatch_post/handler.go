package delivery_dispatch_post

import (
	"encoding/json"
	"net/http"

	"samecity/internal/entities"
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
	merID, ok := response.PathInt64(r, "mer_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	orderID, ok := response.PathInt64(r, "order_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var dispatchDTO dto.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&dispatchDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := h.service.MerDispatch(r.Context(), entities.DispatchRequest{
		OrderID:      orderID,
		MerID:        merID,
		ServiceID:    dispatchDTO.ServiceId,
		CourierName:  dispatchDTO.CourierName,
		CourierPhone: dispatchDTO.CourierPhone,
		Actor:        entities.Actor{Kind: entities.ActorAdmin, ID: merID},
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
