package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/metrics"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

// SetAppointmentStatus is the barber-driven lifecycle step (confirm, start,
// complete, no-show, cancel), constrained by the transition table.
type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	barberID uint,
	userID uint,
	appointmentID uuid.UUID,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	if err := domain.Transition(ap, newStatus, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.StatusChangesTotal.WithLabelValues(string(newStatus)).Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionStatusChanged,
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"from": previous,
			"to":   string(newStatus),
		},
	})

	return ap, nil
}
