package provider_notify_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"samecity/internal/entities"
	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/response"
	"samecity/pkg/logger"
)

const maxBodySize = 1 << 20

type Handler struct {
	log     handlerLogger
	service Service
	parsers map[string]Parser
}

func New(log handlerLogger, service Service, parsers map[string]Parser) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "provider_notify"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		parsers: parsers,
	}
}

// ServeHTTP accepts a provider callback. Providers retry on anything but 200,
// so callbacks we cannot act on are acknowledged and logged.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	provider := mux.Vars(r)["provider"]

	parser, ok := h.parsers[provider]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	notification, err := parser.ParseNotification(unwrapData(body))
	switch {
	case errors.Is(err, entities.ErrCallbackStatus):
		h.log.With(
			logger.NewField("provider", provider),
			logger.NewField("error", err),
		).Warn("provider callback ignored")
		response.JSON(w, h.log, http.StatusOK, dto.NotifyResponse{Status: "ignored"})
		return
	case err != nil:
		h.log.With(
			logger.NewField("provider", provider),
			logger.NewField("error", err),
		).Warn("provider callback rejected")
		response.JSON(w, h.log, http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	if err := h.service.Notify(r.Context(), notification); err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.NotifyResponse{Status: "ok"})
}

// unwrapData handles providers that post the payload as {"data":"<json>"}.
func unwrapData(body []byte) []byte {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope) != 1 {
		return body
	}

	raw, ok := envelope["data"]
	if !ok {
		return body
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return body
	}

	return []byte(inner)
}
