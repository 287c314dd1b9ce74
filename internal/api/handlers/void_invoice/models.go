package void_invoice

// VoidInvoiceRequest is the HTTP request body for voiding an invoice.
type VoidInvoiceRequest struct {
	VoidReason string `json:"voidReason"`
}
