package schedule

import (
	"time"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// CancellationWindow is how far before the start a client may still cancel.
const CancellationWindow = 2 * time.Hour

// ===============================
// Domain Actions
// ===============================

// CanClientCancel checks the client-side cancellation rule: only pending or
// confirmed appointments, strictly more than CancellationWindow before the
// start.
func CanClientCancel(ap *models.Appointment, now time.Time) error {
	status := Status(ap.Status)
	if status != StatusPending && status != StatusConfirmed {
		return httperr.ErrBusiness(CodeInvalidStatus)
	}

	if ap.StartTime.Sub(now) <= CancellationWindow {
		return httperr.ErrBusiness(CodeCancellationExpired)
	}

	return nil
}

// Cancel marks the appointment cancelled. History is preserved; nothing is
// ever deleted.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanClientCancel(ap, now); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Transition applies a barber-driven status change through the transition
// table, stamping the terminal timestamps.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
