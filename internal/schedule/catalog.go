package schedule

import "github.com/lotusspa/SPA-OrderService/pkg/types"

// Period is a named grouping of slots used for display grouping in the
// booking widget.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Periods lists all periods in display order.
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

// Catalog is a static partition of the business day: each period holds an
// ordered list of fixed time-of-day slots.
type Catalog map[Period][]types.TimeString

// Slot generation parameters for the default catalog.
const slotStepMinutes = 30

// DefaultCatalog returns the standard spa day: fixed 30-minute slots in
// three periods. The catalog is not configurable at runtime.
func DefaultCatalog() Catalog {
	return Catalog{
		PeriodMorning:   mustRange("09:00", "11:30"),
		PeriodAfternoon: mustRange("13:00", "16:30"),
		PeriodEvening:   mustRange("17:00", "20:30"),
	}
}

// mustRange generates slots from first to last inclusive with the fixed
// step. The bounds are compile-time constants, hence the panic on error.
func mustRange(first, last string) []types.TimeString {
	start, err := types.NewTimeStringFromString(first)
	if err != nil {
		panic(err)
	}
	end, err := types.NewTimeStringFromString(last)
	if err != nil {
		panic(err)
	}

	slots := make([]types.TimeString, 0)
	current := start
	for !current.IsAfter(end) {
		slots = append(slots, current)
		next, err := current.AddMinutes(slotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}
	return slots
}
