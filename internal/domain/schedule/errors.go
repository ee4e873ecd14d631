package schedule

import (
	"fmt"
	"time"

	"github.com/barberbook/barbershop-api/internal/httperr"
)

// Business error codes surfaced to callers. All recoverable; none fatal.
const (
	CodeNotWorkingDay        = "not_working_day"
	CodeOutsideWorkingHours  = "outside_working_hours"
	CodeSlotTaken            = "slot_taken"
	CodeCancellationExpired  = "cancellation_window_expired"
	CodeInvalidStatus        = "invalid_status"
	CodeReviewNotAllowed     = "review_not_allowed"
	CodeInvalidRating        = "invalid_rating"
	CodeNotFound             = "not_found"
	CodeBarberUnavailable    = "barber_unavailable"
	CodeAppointmentInThePast = "appointment_in_the_past"
)

// SlotTakenError reports the interval that already occupies the slot.
type SlotTakenError struct {
	Start time.Time
	End   time.Time
}

func (e SlotTakenError) Error() string {
	return fmt.Sprintf(
		"%s: conflicts with %s-%s",
		CodeSlotTaken,
		e.Start.Format("15:04"),
		e.End.Format("15:04"),
	)
}

// Unwrap lets errors.As reach the business code.
func (e SlotTakenError) Unwrap() error {
	return httperr.BusinessError{Code: CodeSlotTaken}
}
