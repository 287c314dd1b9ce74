package get_available_slots

import (
	"time"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	getAvailableSlots "github.com/lotusspa/SPA-OrderService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model: slots grouped by
// period, in display order. Empty periods are kept so the widget can
// render "no slots available" per period.
type AvailableSlotsResponse struct {
	Date    string        `json:"date"`
	Periods []PeriodSlots `json:"periods"`
}

// PeriodSlots is one period with its remaining slot times.
type PeriodSlots struct {
	Period string   `json:"period"`
	Slots  []string `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	periods := make([]PeriodSlots, len(resp.Periods))
	for i, p := range resp.Periods {
		slots := make([]string, len(p.Slots))
		for j, s := range p.Slots {
			slots[j] = s.String()
		}
		periods[i] = PeriodSlots{
			Period: string(p.Period),
			Slots:  slots,
		}
	}

	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Periods: periods,
	}
}

// ToUseCaseRequest builds the use case request from the date query param.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
