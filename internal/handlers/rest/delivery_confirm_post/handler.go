package delivery_confirm_post

import (
	"net/http"

	"samecity/internal/entities"
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

	err := h.service.Confirm(r.Context(), orderID, entities.Actor{Kind: entities.ActorAdmin, ID: merID})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
