package quote_order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lotusspa/SPA-OrderService/internal/api/handlers"
	quoteOrder "github.com/lotusspa/SPA-OrderService/internal/usecase/quote_order"
)

const msgInvalidBody = "invalid request body"

type Handler struct {
	useCase QuoteOrderUseCase
	logger  Logger
}

func NewHandler(useCase QuoteOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /orders/quote - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(&req))
	if err != nil {
		switch {
		case errors.Is(err, quoteOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /orders/quote - Failed to compute quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
