package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lotusspa/SPA-OrderService/internal/domain"
	"github.com/lotusspa/SPA-OrderService/internal/schedule"
)

// UseCase returns the slots still bookable on a given date for the public
// booking widget.
type UseCase struct {
	catalog      schedule.Catalog
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(catalog schedule.Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the slot availability computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	filtered, err := schedule.AvailableSlots(uc.catalog, req.Date, now)
	if err != nil {
		if errors.Is(err, schedule.ErrDateInPast) {
			uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
			return nil, ErrDateInPast
		}
		uc.logger.Error("GetAvailableSlots: filter failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Fixed period order for rendering.
	periods := make([]PeriodSlots, 0, len(schedule.Periods))
	total := 0
	for _, period := range schedule.Periods {
		slots := filtered[period]
		total += len(slots)
		periods = append(periods, PeriodSlots{Period: period, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlots: %d slots available on %s", total, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		Periods: periods,
	}, nil
}
