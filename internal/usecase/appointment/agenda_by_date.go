package appointment

import (
	"context"
	"time"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/dto"
)

type AgendaByDate struct {
	repo domain.Repository
}

func NewAgendaByDate(repo domain.Repository) *AgendaByDate {
	return &AgendaByDate{repo: repo}
}

// Execute returns the day's agenda. The whole day is fetched so the
// summary counts every status; the status filter narrows the item list
// only.
func (uc *AgendaByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
	status domain.Status,
) (*dto.AgendaDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

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

	agenda := &dto.AgendaDTO{
		Items: make([]dto.AgendaItemDTO, 0, len(appointments)),
	}

	for _, ap := range appointments {
		countStatus(&agenda.Summary, domain.Status(ap.Status))

		if status != "" && domain.Status(ap.Status) != status {
			continue
		}

		agenda.Items = append(agenda.Items, dto.AgendaItemDTO{
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

	return agenda, nil
}

func countStatus(s *dto.AgendaSummaryDTO, status domain.Status) {
	s.Total++
	switch status {
	case domain.StatusPending:
		s.Pending++
	case domain.StatusConfirmed:
		s.Confirmed++
	case domain.StatusInProgress:
		s.InProgress++
	case domain.StatusCompleted:
		s.Completed++
	case domain.StatusCancelled:
		s.Cancelled++
	case domain.StatusNoShow:
		s.NoShow++
	}
}
