package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/metrics"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.IsAvailable {
		return nil, httperr.ErrBusiness(domain.CodeBarberUnavailable)
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !start.After(timezone.Now()) {
		return nil, httperr.ErrBusiness(domain.CodeAppointmentInThePast)
	}

	service, err := uc.repo.GetService(ctx, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	end := start.Add(duration)

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, start.Weekday())
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(start)
	existing, err := uc.repo.ListLiveAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSlot(wh, existing, start, duration, uuid.Nil); err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotTaken) {
			metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	ap := &models.Appointment{
		ID:         uuid.New(),
		ClientID:   in.ClientID,
		BarberID:   in.BarberID,
		ServiceID:  service.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		TotalPrice: service.Price,
		Notes:      in.Notes,
	}

	// The repository re-runs the overlap check under a row lock; passing
	// validation above is not enough with concurrent bookings in flight.
	if err := uc.repo.BookAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotTaken) {
			metrics.BookingConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.BookingsTotal.Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   nil,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"barber_id":  ap.BarberID,
			"client_id":  ap.ClientID,
			"service_id": ap.ServiceID,
			"start_time": ap.StartTime,
		},
	})

	return ap, nil
}
