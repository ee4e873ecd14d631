package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday time.Weekday,
	) (*models.WorkingHours, error)

	// -------- Appointments (read) --------
	ListLiveAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
		status Status,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	CountLiveAppointmentsBefore(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		before time.Time,
	) (int64, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uuid.UUID,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uuid.UUID,
		clientID uint,
	) (*models.Appointment, error)

	// -------- Appointments (write) --------

	// BookAppointment inserts inside one transaction that locks the
	// barber's live rows for the day and re-runs the overlap check, so no
	// two concurrent requests can persist overlapping intervals.
	BookAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reviews --------
	HasReview(
		ctx context.Context,
		appointmentID uuid.UUID,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		review *models.Review,
	) error
}
