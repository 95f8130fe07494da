package delivery_provider_detail_get

import (
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
		service: service,
		log:     handlerLog,
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

	detail, err := h.service.ProviderOrderDetail(r.Context(), merID, orderID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ProviderOrderDetail{
		ProviderOrderCode: detail.ProviderOrderCode,
		Status:            int(detail.Status),
		StatusText:        detail.StatusText,
		CourierName:       detail.CourierName,
		CourierPhone:      detail.CourierPhone,
		Fee:               detail.Fee.StringFixed(2),
		DeductFee:         detail.DeductFee.StringFixed(2),
		Distance:          detail.Distance.String(),
		FinishCode:        detail.FinishCode,
	})
}
