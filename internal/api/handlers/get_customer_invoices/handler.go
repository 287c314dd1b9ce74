package get_customer_invoices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lotusspa/SPA-OrderService/internal/api/handlers"
	invoicesService "github.com/lotusspa/SPA-OrderService/internal/service/invoices"
)

const (
	msgInvalidCustomerID = "invalid customer ID"
	msgInvalidFilter     = "invalid filter parameters"
)

type Handler struct {
	service InvoicesService
	logger  Logger
}

func NewHandler(service InvoicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/invoices
// Query params: status, startDate, endDate (YYYY-MM-DD), includeVoided
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/invoices - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	query := map[string]string{
		"status":        r.URL.Query().Get("status"),
		"startDate":     r.URL.Query().Get("startDate"),
		"endDate":       r.URL.Query().Get("endDate"),
		"includeVoided": r.URL.Query().Get("includeVoided"),
	}

	serviceReq, err := ToServiceRequest(customerID, query)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/invoices - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetCustomerInvoices(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, invoicesService.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/invoices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /customers/{id}/invoices - Failed to list invoices: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
