package create_invoice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lotusspa/SPA-OrderService/internal/api/handlers"
	"github.com/lotusspa/SPA-OrderService/internal/api/middleware"
	createInvoice "github.com/lotusspa/SPA-OrderService/internal/usecase/create_invoice"
)

const (
	msgInvalidBody      = "invalid request body"
	msgCustomerNotFound = "customer not found"
	msgServiceNotFound  = "catalog service not found"
	msgServiceInactive  = "catalog service is not active"
)

type Handler struct {
	useCase CreateInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase CreateInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/invoices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "X-User-ID header is required")
		return
	}

	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /invoices - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(userID, &req))
	if err != nil {
		switch {
		case errors.Is(err, createInvoice.ErrInvalidInput):
			h.logger.Warn("POST /invoices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createInvoice.ErrCustomerNotFound):
			h.logger.Warn("POST /invoices - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createInvoice.ErrServiceNotFound):
			h.logger.Warn("POST /invoices - Catalog service not found: %v", err)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, createInvoice.ErrServiceInactive):
			h.logger.Warn("POST /invoices - Catalog service inactive: %v", err)
			handlers.RespondBadRequest(w, msgServiceInactive)

		default:
			h.logger.Error("POST /invoices - Failed to create invoice: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /invoices - Invoice created: id=%d, customer_id=%d",
		result.Invoice.ID, result.Invoice.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
