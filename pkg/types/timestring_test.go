package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lotusspa/SPA-OrderService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)
	require.Equal(t, "09:30", ts.String())

	for _, bad := range []string{"", "9:30am", "25:00", "12:60", "noon"} {
		_, err := types.NewTimeStringFromString(bad)
		require.ErrorIs(t, err, types.ErrInvalidTimeString, "input %q", bad)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 10, 14, 5, 59, 0, time.UTC)
	require.Equal(t, types.TimeString("14:05"), types.NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	require.Equal(t, 630, minutes)

	_, err = types.TimeString("garbage").Minutes()
	require.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	early := types.TimeString("09:00")
	late := types.TimeString("17:30")

	require.True(t, early.IsBefore(late))
	require.False(t, late.IsBefore(early))
	require.True(t, late.IsAfter(early))
	require.False(t, early.IsAfter(late))

	// Equal values are neither before nor after.
	require.False(t, early.IsBefore(early))
	require.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := types.TimeString("09:45")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	require.Equal(t, types.TimeString("10:15"), next)

	// Rolling past midnight is an error, not a wrap.
	_, err = types.TimeString("23:45").AddMinutes(30)
	require.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("14:30"))
	require.Equal(t, types.TimeString("14:30"), ts)

	// TIME columns often come back with seconds.
	require.NoError(t, ts.Scan("08:15:00"))
	require.Equal(t, types.TimeString("08:15"), ts)

	require.NoError(t, ts.Scan([]byte("20:00")))
	require.Equal(t, types.TimeString("20:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 11, 45, 0, 0, time.UTC)))
	require.Equal(t, types.TimeString("11:45"), ts)

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := types.TimeString("16:00").Value()
	require.NoError(t, err)
	require.Equal(t, "16:00", v)

	_, err = types.TimeString("bad").Value()
	require.ErrorIs(t, err, types.ErrInvalidTimeString)
}
