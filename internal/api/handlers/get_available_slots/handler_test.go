package get_available_slots_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	slotsHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/get_available_slots"
	"github.com/lotusspa/SPA-OrderService/internal/schedule"
	slotsUC "github.com/lotusspa/SPA-OrderService/internal/usecase/get_available_slots"
	"github.com/lotusspa/SPA-OrderService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *slotsUC.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *slotsUC.Request) (*slotsUC.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &stubUseCase{resp: &slotsUC.Response{
		Date: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		Periods: []slotsUC.PeriodSlots{
			{Period: schedule.PeriodMorning, Slots: []types.TimeString{"09:00", "09:30"}},
			{Period: schedule.PeriodAfternoon, Slots: []types.TimeString{}},
			{Period: schedule.PeriodEvening, Slots: []types.TimeString{"18:00"}},
		},
	}}
	h := slotsHandler.NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-03-12", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp slotsHandler.AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2026-03-12", resp.Date)
	require.Len(t, resp.Periods, 3)
	require.Equal(t, "morning", resp.Periods[0].Period)
	require.Equal(t, []string{"09:00", "09:30"}, resp.Periods[0].Slots)

	// Empty periods stay in the payload with an empty array.
	require.Equal(t, "afternoon", resp.Periods[1].Period)
	require.Empty(t, resp.Periods[1].Slots)
}

func TestHandle_MissingDate(t *testing.T) {
	h := slotsHandler.NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	h := slotsHandler.NewHandler(&stubUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=12-03-2026", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_DateInPast(t *testing.T) {
	h := slotsHandler.NewHandler(&stubUseCase{err: slotsUC.ErrDateInPast}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2020-01-01", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := slotsHandler.NewHandler(&stubUseCase{err: slotsUC.ErrInternal}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-03-12", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
