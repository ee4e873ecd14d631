package appointment

import (
	"context"
	"time"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

type AvailabilityInput struct {
	BarberID uint
	Date     time.Time

	// ServiceID is optional; when zero the default slot duration applies.
	ServiceID uint
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the bookable start times as "HH:MM" strings, recomputed
// fresh on every call.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	duration := domain.DefaultSlotDuration
	if in.ServiceID != 0 {
		service, err := uc.repo.GetService(ctx, in.BarberID, in.ServiceID)
		if err != nil {
			return nil, err
		}
		duration = time.Duration(service.DurationMin) * time.Minute
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, in.Date.Weekday())
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(in.Date)
	existing, err := uc.repo.ListLiveAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots, err := domain.AvailableSlots(wh, existing, in.Date, domain.DefaultGranularity, duration)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}

	return out, nil
}
