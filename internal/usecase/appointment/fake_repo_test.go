package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// fakeRepo is an in-memory Repository for use-case tests. BookAppointment
// mirrors the production transaction: it holds a lock across the overlap
// recheck and the insert, the way the advisory lock serializes bookings
// per barber per day.
type fakeRepo struct {
	mu           sync.Mutex
	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	hours        map[time.Weekday]*models.WorkingHours
	appointments map[uuid.UUID]*models.Appointment
	reviews      map[uuid.UUID]*models.Review
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		hours:        map[time.Weekday]*models.WorkingHours{},
		appointments: map[uuid.UUID]*models.Appointment{},
		reviews:      map[uuid.UUID]*models.Review{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeNotFound)
	}
	return b, nil
}

func (r *fakeRepo) GetService(_ context.Context, barberID, serviceID uint) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok || s.BarberID != barberID || !s.Active {
		return nil, httperr.ErrBusiness(domain.CodeNotFound)
	}
	return s, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday time.Weekday) (*models.WorkingHours, error) {
	return r.hours[weekday], nil
}

func (r *fakeRepo) ListLiveAppointmentsForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.liveForDayLocked(barberID, dayStart, dayEnd), nil
}

// liveForDayLocked requires r.mu held.
func (r *fakeRepo) liveForDayLocked(barberID uint, dayStart, dayEnd time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || !domain.Status(ap.Status).IsLive() {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	return out
}

func (r *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	status domain.Status,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		if status != "" && domain.Status(ap.Status) != status {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) CountLiveAppointmentsBefore(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	before time.Time,
) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, ap := range r.appointments {
		if ap.BarberID != barberID || !domain.Status(ap.Status).IsLive() {
			continue
		}
		if !ap.StartTime.Before(dayStart) && ap.StartTime.Before(before) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) GetAppointmentForBarber(
	_ context.Context,
	appointmentID uuid.UUID,
	barberID uint,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok || ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(domain.CodeNotFound)
	}
	return ap, nil
}

func (r *fakeRepo) GetAppointmentForClient(
	_ context.Context,
	appointmentID uuid.UUID,
	clientID uint,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok || ap.ClientID != clientID {
		return nil, httperr.ErrBusiness(domain.CodeNotFound)
	}
	return ap, nil
}

func (r *fakeRepo) BookAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dayStart := time.Date(
		ap.StartTime.Year(), ap.StartTime.Month(), ap.StartTime.Day(),
		0, 0, 0, 0, ap.StartTime.Location(),
	)
	live := r.liveForDayLocked(ap.BarberID, dayStart, dayStart.Add(24*time.Hour))
	if conflict := domain.FirstConflict(live, ap.StartTime, ap.EndTime, ap.ID); conflict != nil {
		return domain.SlotTakenError{Start: conflict.StartTime, End: conflict.EndTime}
	}

	stored := *ap
	r.appointments[stored.ID] = &stored
	return nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *ap
	r.appointments[stored.ID] = &stored
	return nil
}

func (r *fakeRepo) HasReview(_ context.Context, appointmentID uuid.UUID) (bool, error) {
	_, ok := r.reviews[appointmentID]
	return ok, nil
}

func (r *fakeRepo) CreateReview(_ context.Context, review *models.Review) error {
	stored := *review
	r.reviews[stored.AppointmentID] = &stored
	return nil
}
