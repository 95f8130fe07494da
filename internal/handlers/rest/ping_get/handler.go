package ping_get

import (
	"net/http"

	"github.com/AlekSi/pointer"
	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/response"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: pointer.To("pong"),
	})
}
