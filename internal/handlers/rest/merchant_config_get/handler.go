package merchant_config_get

import (
	"net/http"

	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/converters"
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

	cfg, err := h.service.MerchantConfig(r.Context(), merID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.MerchantConfig{
		MerId:               merID,
		Fee:                 converters.FeeConfigToDTO(cfg.FeeEnabled, cfg.Fee),
		CourierClaimEnabled: cfg.CourierClaimEnabled,
	})
}
