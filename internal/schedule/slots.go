// Package schedule implements the slot availability engine used by the
// public booking widget: a pure filter over a static catalog of bookable
// time-of-day slots.
package schedule

import (
	"time"

	"github.com/lotusspa/SPA-OrderService/pkg/types"
)

// AvailableSlots returns, per period, the slots of the catalog that are
// still bookable on targetDate as of now.
//
//   - targetDate strictly in the future (by calendar date): the full catalog.
//   - targetDate today: only slots strictly later than now's time-of-day.
//   - targetDate in the past: ErrDateInPast.
//
// Every catalog period is always present in the result, possibly with an
// empty slice, so callers can distinguish "no slots left in this period"
// from "unknown period". The catalog itself is never mutated. now is
// injected by the caller; the function reads no clock of its own.
func AvailableSlots(catalog Catalog, targetDate time.Time, now time.Time) (map[Period][]types.TimeString, error) {
	if targetDate.IsZero() {
		return nil, ErrInvalidDate
	}
	if isDateInPast(targetDate, now) {
		return nil, ErrDateInPast
	}

	result := make(map[Period][]types.TimeString, len(catalog))

	// Future date: the whole catalog is bookable.
	if !isSameDay(targetDate, now) {
		for period, slots := range catalog {
			result[period] = append([]types.TimeString(nil), slots...)
		}
		return result, nil
	}

	// Same day: keep only slots strictly after the current time-of-day.
	cutoff := types.NewTimeString(now)
	for period, slots := range catalog {
		remaining := make([]types.TimeString, 0, len(slots))
		for _, slot := range slots {
			if slot.IsAfter(cutoff) {
				remaining = append(remaining, slot)
			}
		}
		result[period] = remaining
	}
	return result, nil
}

// isSameDay checks that two instants fall on the same calendar date.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast checks that date is before today's calendar date.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
