package quote_order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	quoteOrderHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/quote_order"
	"github.com/lotusspa/SPA-OrderService/internal/pricing"
	quoteOrderUC "github.com/lotusspa/SPA-OrderService/internal/usecase/quote_order"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler() *quoteOrderHandler.Handler {
	uc := quoteOrderUC.NewUseCase(pricing.DefaultTaxPolicy(), nopLogger{})
	return quoteOrderHandler.NewHandler(uc, nopLogger{})
}

func TestHandle_Quote(t *testing.T) {
	body := `{
		"items": [
			{"itemType": "service", "itemId": 1, "itemName": "Hot stone massage", "quantity": 2, "unitPrice": 300000, "itemDiscount": 50000}
		],
		"discountAmount": 100000,
		"discountReason": "member"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newHandler().Handle(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp quoteOrderHandler.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(550_000), resp.Subtotal)
	require.Equal(t, int64(100_000), resp.DiscountAmount)
	require.Equal(t, int64(450_000), resp.TaxableAmount)
	require.Equal(t, int64(36_000), resp.TaxAmount)
	require.Equal(t, int64(486_000), resp.TotalAmount)
}

func TestHandle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/quote", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newHandler().Handle(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	body := `{"items": [{"itemType": "subscription", "itemId": 1, "quantity": 1, "unitPrice": 100}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newHandler().Handle(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingUseCase struct{}

func (failingUseCase) Execute(_ context.Context, _ *quoteOrderUC.Request) (*quoteOrderUC.Response, error) {
	return nil, quoteOrderUC.ErrInternal
}

func TestHandle_InternalError(t *testing.T) {
	h := quoteOrderHandler.NewHandler(failingUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/quote", strings.NewReader(`{"items": []}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
