package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// HoursOnDate projects a working-hours row onto a concrete date, in the
// date's location. A row whose stored times do not parse is corrupt and
// reported as an error, never treated as midnight.
func HoursOnDate(wh *models.WorkingHours, date time.Time) (time.Time, time.Time, error) {
	loc := date.Location()

	parseHM := func(hm string) (time.Time, error) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid working hours %q for weekday %d: %w", hm, wh.Weekday, err)
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), nil
	}

	start, err := parseHM(wh.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseHM(wh.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Overlaps is the single overlap rule shared by conflict checking and
// availability: half-open intervals [aStart, aEnd) and [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FirstConflict returns the first live appointment overlapping
// [start, end), skipping the appointment identified by excludeID (the
// one being edited, if any).
func FirstConflict(
	existing []models.Appointment,
	start time.Time,
	end time.Time,
	excludeID uuid.UUID,
) *models.Appointment {

	for i := range existing {
		ap := &existing[i]

		if ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).IsLive() {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return ap
		}
	}

	return nil
}

// ValidateSlot decides whether a candidate appointment fits the barber's
// working hours and conflicts with no live appointment. Pure read +
// decision; the same predicate runs again inside the booking transaction.
func ValidateSlot(
	wh *models.WorkingHours,
	existing []models.Appointment,
	start time.Time,
	duration time.Duration,
	excludeID uuid.UUID,
) error {

	if wh == nil || !wh.IsWorking || wh.StartTime == "" || wh.EndTime == "" {
		return httperr.ErrBusiness(CodeNotWorkingDay)
	}

	workStart, workEnd, err := HoursOnDate(wh, start)
	if err != nil {
		return err
	}

	if start.Before(workStart) || !start.Before(workEnd) {
		return httperr.ErrBusiness(CodeOutsideWorkingHours)
	}

	end := start.Add(duration)
	if end.After(workEnd) {
		return httperr.ErrBusiness(CodeOutsideWorkingHours)
	}

	if conflict := FirstConflict(existing, start, end, excludeID); conflict != nil {
		return SlotTakenError{
			Start: conflict.StartTime,
			End:   conflict.EndTime,
		}
	}

	return nil
}
