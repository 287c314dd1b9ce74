package get_available_slots

import (
	"time"

	"github.com/lotusspa/SPA-OrderService/internal/schedule"
	"github.com/lotusspa/SPA-OrderService/pkg/types"
)

// Request carries the target date the booking widget asks about.
type Request struct {
	Date time.Time // date only, time component ignored
}

// Response groups the remaining bookable slots by period. Every catalog
// period is present even when it has no slots left.
type Response struct {
	Date    time.Time
	Periods []PeriodSlots
}

// PeriodSlots is one period of the day with its remaining slots in order.
type PeriodSlots struct {
	Period schedule.Period
	Slots  []types.TimeString
}
