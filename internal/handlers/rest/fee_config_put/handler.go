package fee_config_put

import (
	"encoding/json"
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

	var feeConfigDTO dto.FeeConfig
	if err := json.NewDecoder(r.Body).Decode(&feeConfigDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cfg, err := converters.FeeConfigFromDTO(feeConfigDTO)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if err := h.service.SaveFeeConfig(r.Context(), merID, feeConfigDTO.Enabled, cfg); err != nil {
		response.Error(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
