package delivery_create_post

import (
	"net/http"

	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/response"
	"samecity/pkg/logger"
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

// ServeHTTP dispatches a paid sales order. A provider refusal is not an
// error here: the order is flagged for a retry and dispatched=false returned.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, ok := response.PathInt64(r, "order_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dispatched, err := h.service.Create(r.Context(), orderID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if !dispatched {
		h.log.With(
			logger.NewField("order_id", orderID),
		).Warn("delivery dispatch failed, order flagged")
	}

	response.JSON(w, h.log, http.StatusOK, dto.DeliveryCreateResponse{
		OrderId:    orderID,
		Dispatched: dispatched,
	})
}
