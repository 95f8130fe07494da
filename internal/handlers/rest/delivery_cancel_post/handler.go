package delivery_cancel_post

import (
	"encoding/json"
	"net/http"

	"samecity/internal/entities"
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

	var cancelDTO dto.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&cancelDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := entities.CancelRequest{
		OrderID: orderID,
		MerID:   merID,
		Actor:   entities.Actor{Kind: entities.ActorAdmin, ID: merID},
	}
	if cancelDTO.ReasonId != nil {
		req.ReasonID = *cancelDTO.ReasonId
	}
	if cancelDTO.Reason != nil {
		req.Reason = *cancelDTO.Reason
	}

	if err := h.service.Cancel(r.Context(), req); err != nil {
		if entities.IsProviderError(err) {
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Warn("provider refused cancellation")
		}
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
