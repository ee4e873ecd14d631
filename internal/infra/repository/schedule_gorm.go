package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func liveStatuses() []string {
	out := make([]string, 0, len(domain.LiveStatuses))
	for _, s := range domain.LiveStatuses {
		out = append(out, string(s))
	}
	return out
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ? AND active = true", serviceID, barberID).
		First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday time.Weekday,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, int(weekday)).
		First(&wh).Error

	if err == gorm.ErrRecordNotFound {
		// no row means a non-working day, not a failure
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListLiveAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			barberID, liveStatuses(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
	status domain.Status,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		)

	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormRepository) CountLiveAppointmentsBefore(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	before time.Time,
) (int64, error) {

	dayEnd := dayStart.Add(24 * time.Hour)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ? AND start_time < ?",
			barberID, liveStatuses(), dayStart, dayEnd, before,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ScheduleGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uuid.UUID,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uuid.UUID,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(domain.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointments (write)
// --------------------------------------------------

// BookAppointment serializes all bookings for one (barber, day) behind a
// transaction-scoped advisory lock, re-runs the overlap predicate, and
// inserts. Row locks alone cannot close the race on an empty day: two
// transactions whose locking SELECT matches zero rows would both pass the
// recheck and both commit overlapping slots. The advisory lock makes the
// check-then-insert mutually exclusive per barber per day; it releases
// automatically on commit or rollback.
func (r *ScheduleGormRepository) BookAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	dayStart, dayEnd := timezone.DayBounds(ap.StartTime)
	dayKey := int32(dayStart.Unix() / 86400)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			int32(ap.BarberID), dayKey,
		).Error; err != nil {
			return err
		}

		var live []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
				ap.BarberID, liveStatuses(), dayStart, dayEnd,
			).
			Find(&live).Error; err != nil {
			return err
		}

		if conflict := domain.FirstConflict(live, ap.StartTime, ap.EndTime, ap.ID); conflict != nil {
			return domain.SlotTakenError{
				Start: conflict.StartTime,
				End:   conflict.EndTime,
			}
		}

		return tx.Create(ap).Error
	})
}

// UpdateAppointment writes the appointment row only; preloaded
// associations stay untouched.
func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *ScheduleGormRepository) HasReview(
	ctx context.Context,
	appointmentID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ScheduleGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
