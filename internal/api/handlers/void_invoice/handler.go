package void_invoice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lotusspa/SPA-OrderService/internal/api/handlers"
	"github.com/lotusspa/SPA-OrderService/internal/api/middleware"
	invoicesService "github.com/lotusspa/SPA-OrderService/internal/service/invoices"
	"github.com/lotusspa/SPA-OrderService/internal/service/invoices/models"
)

const (
	msgInvalidInvoiceID = "invalid invoice ID"
	msgInvalidBody      = "invalid request body"
	msgInvoiceNotFound  = "invoice not found"
	msgCannotVoid       = "invoice cannot be voided"
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

// Handle PATCH /api/v1/invoices/{invoiceId}/void
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "X-User-ID header is required")
		return
	}

	vars := mux.Vars(r)
	invoiceID, err := strconv.ParseInt(vars["invoiceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /invoices/{id}/void - Invalid invoice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInvoiceID)
		return
	}

	var req VoidInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PATCH /invoices/{id}/void - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq := &models.VoidInvoiceRequest{
		UserID:     userID,
		VoidReason: req.VoidReason,
	}

	if err := h.service.Void(r.Context(), invoiceID, serviceReq); err != nil {
		switch {
		case errors.Is(err, invoicesService.ErrInvoiceNotFound):
			h.logger.Warn("PATCH /invoices/{id}/void - Invoice not found: invoice_id=%d", invoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		case errors.Is(err, invoicesService.ErrCannotVoid):
			h.logger.Warn("PATCH /invoices/{id}/void - Cannot void: invoice_id=%d", invoiceID)
			handlers.RespondConflict(w, msgCannotVoid)

		case errors.Is(err, invoicesService.ErrInvalidInput):
			h.logger.Warn("PATCH /invoices/{id}/void - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /invoices/{id}/void - Failed to void invoice: invoice_id=%d, error=%v",
				invoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /invoices/{id}/void - Invoice voided: invoice_id=%d, user_id=%d", invoiceID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
