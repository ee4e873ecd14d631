package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/models"
)

const (
	// DefaultGranularity is the step between candidate slot starts.
	DefaultGranularity = 30 * time.Minute

	// DefaultSlotDuration is assumed when the caller names no service.
	DefaultSlotDuration = time.Hour
)

// AvailableSlots generates the bookable start times for one barber on one
// date. Candidate starts step from opening by granularity and stop at
// closing; the bound is on the slot start, not its end. A slot is included
// iff [start, start+duration) overlaps no live appointment. A closed day or
// a missing working-hours row yields an empty result, not an error.
//
// Recomputed fresh on every call; nothing is cached.
func AvailableSlots(
	wh *models.WorkingHours,
	existing []models.Appointment,
	date time.Time,
	granularity time.Duration,
	duration time.Duration,
) ([]time.Time, error) {

	if wh == nil || !wh.IsWorking || wh.StartTime == "" || wh.EndTime == "" {
		return nil, nil
	}
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	if duration <= 0 {
		duration = DefaultSlotDuration
	}

	dayStart, dayEnd, err := HoursOnDate(wh, date)
	if err != nil {
		return nil, err
	}

	var slots []time.Time
	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(granularity) {
		if FirstConflict(existing, cur, cur.Add(duration), uuid.Nil) == nil {
			slots = append(slots, cur)
		}
	}

	return slots, nil
}
