package appointment

import (
	"context"
	"time"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/dto"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

type AgendaByMonth struct {
	repo domain.Repository
}

func NewAgendaByMonth(repo domain.Repository) *AgendaByMonth {
	return &AgendaByMonth{repo: repo}
}

func (uc *AgendaByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.AgendaItemDTO, error) {

	loc := timezone.Default()

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		start,
		end,
		"",
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendaItemDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AgendaItemDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
			TotalPrice:  ap.TotalPrice,
			Notes:       ap.Notes,
		})
	}

	return out, nil
}
