package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/dto"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.ClientAppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	out := make([]dto.ClientAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.ClientAppointmentDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
			TotalPrice:  ap.TotalPrice,
			Notes:       ap.Notes,
		}

		// Same-day queue position for upcoming live appointments only.
		if domain.Status(ap.Status).IsLive() && ap.StartTime.After(now) {
			dayStart, _ := timezone.DayBounds(ap.StartTime)
			pos, err := uc.repo.CountLiveAppointmentsBefore(
				ctx,
				ap.BarberID,
				dayStart,
				ap.StartTime,
			)
			if err != nil {
				return nil, err
			}
			item.QueuePosition = &pos
		}

		out = append(out, item)
	}

	return out, nil
}
