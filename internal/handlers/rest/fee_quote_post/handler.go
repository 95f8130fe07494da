package fee_quote_post

import (
	"encoding/json"
	"net/http"

	"samecity/internal/entities"
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

	var quoteDTO dto.FeeQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&quoteDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req, err := toFeeRequest(merID, quoteDTO)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	quote, err := h.service.Quote(r.Context(), req)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FeeQuoteResponse{
		Fee:         quote.Fee.StringFixed(2),
		Distance:    quote.Distance.String(),
		Destination: converters.PointToDTO(quote.Destination),
	})
}

func toFeeRequest(merID int64, q dto.FeeQuoteRequest) (entities.FeeRequest, error) {
	total, err := converters.Decimal("order_total", q.OrderTotal)
	if err != nil {
		return entities.FeeRequest{}, err
	}

	req := entities.FeeRequest{
		StationID:  q.StationId,
		MerID:      merID,
		OrderTotal: total,
	}
	if q.TotalWeight != nil {
		if req.TotalWeight, err = converters.Decimal("total_weight", *q.TotalWeight); err != nil {
			return entities.FeeRequest{}, err
		}
	}
	if req.Destination, err = converters.AddressFromDTO(q.Destination); err != nil {
		return entities.FeeRequest{}, err
	}
	return req, nil
}
