package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lotusspa/SPA-OrderService/internal/schedule"
	"github.com/lotusspa/SPA-OrderService/pkg/types"
)

func mustTS(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func testCatalog(t *testing.T) schedule.Catalog {
	t.Helper()
	return schedule.Catalog{
		schedule.PeriodMorning:   {mustTS(t, "10:00"), mustTS(t, "10:30")},
		schedule.PeriodAfternoon: {mustTS(t, "13:00"), mustTS(t, "14:30"), mustTS(t, "16:00")},
		schedule.PeriodEvening:   {mustTS(t, "18:00")},
	}
}

func TestAvailableSlots_FutureDate(t *testing.T) {
	catalog := testCatalog(t)
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	target := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	slots, err := schedule.AvailableSlots(catalog, target, now)
	require.NoError(t, err)

	require.Equal(t, catalog[schedule.PeriodMorning], slots[schedule.PeriodMorning])
	require.Equal(t, catalog[schedule.PeriodAfternoon], slots[schedule.PeriodAfternoon])
	require.Equal(t, catalog[schedule.PeriodEvening], slots[schedule.PeriodEvening])
}

func TestAvailableSlots_TodayFiltersPastSlots(t *testing.T) {
	catalog := testCatalog(t)
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	target := now

	slots, err := schedule.AvailableSlots(catalog, target, now)
	require.NoError(t, err)

	// Morning is over; the key stays with an empty slice.
	require.NotNil(t, slots[schedule.PeriodMorning])
	require.Empty(t, slots[schedule.PeriodMorning])

	// Only afternoon slots strictly after 14:00 remain.
	require.Equal(t, []types.TimeString{mustTS(t, "14:30"), mustTS(t, "16:00")},
		slots[schedule.PeriodAfternoon])

	require.Equal(t, []types.TimeString{mustTS(t, "18:00")}, slots[schedule.PeriodEvening])
}

func TestAvailableSlots_TodaySlotAtNowExcluded(t *testing.T) {
	catalog := schedule.Catalog{
		schedule.PeriodAfternoon: {mustTS(t, "13:00"), mustTS(t, "13:30")},
	}
	// Exactly 13:00: the 13:00 slot is no longer bookable.
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	slots, err := schedule.AvailableSlots(catalog, now, now)
	require.NoError(t, err)
	require.Equal(t, []types.TimeString{mustTS(t, "13:30")}, slots[schedule.PeriodAfternoon])
}

func TestAvailableSlots_PastDate(t *testing.T) {
	catalog := testCatalog(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	target := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)

	_, err := schedule.AvailableSlots(catalog, target, now)
	require.ErrorIs(t, err, schedule.ErrDateInPast)
}

func TestAvailableSlots_ZeroDate(t *testing.T) {
	_, err := schedule.AvailableSlots(testCatalog(t), time.Time{}, time.Now())
	require.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestAvailableSlots_DoesNotMutateCatalog(t *testing.T) {
	catalog := testCatalog(t)
	original := len(catalog[schedule.PeriodAfternoon])

	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	slots, err := schedule.AvailableSlots(catalog, now, now)
	require.NoError(t, err)

	slots[schedule.PeriodAfternoon] = append(slots[schedule.PeriodAfternoon], mustTS(t, "23:00"))
	require.Len(t, catalog[schedule.PeriodAfternoon], original)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := schedule.DefaultCatalog()

	require.Len(t, catalog, len(schedule.Periods))
	for _, period := range schedule.Periods {
		require.Contains(t, catalog, period)
		require.NotEmpty(t, catalog[period])
	}

	// 09:00 to 11:30 inclusive with a 30 minute step.
	require.Len(t, catalog[schedule.PeriodMorning], 6)
	require.Equal(t, mustTS(t, "09:00"), catalog[schedule.PeriodMorning][0])
	require.Equal(t, mustTS(t, "11:30"), catalog[schedule.PeriodMorning][5])

	require.Len(t, catalog[schedule.PeriodAfternoon], 8)
	require.Len(t, catalog[schedule.PeriodEvening], 8)
}
