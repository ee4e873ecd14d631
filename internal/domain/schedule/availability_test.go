package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barbershop-api/internal/models"
)

func slotStrings(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	return out
}

func TestAvailableSlots_FullOpenDay(t *testing.T) {
	wh := workingDay("09:00", "18:00")

	slots, err := AvailableSlots(wh, nil, monday, DefaultGranularity, DefaultSlotDuration)
	require.NoError(t, err)

	// 09:00 through 17:30 in 30 minute steps; the bound is on the slot
	// start, so 17:30 appears even though its hour runs past closing.
	require.Len(t, slots, 18)
	assert.Equal(t, at(9, 0), slots[0])
	assert.Equal(t, at(17, 30), slots[len(slots)-1])
}

func TestAvailableSlots_SkipsConflictingStarts(t *testing.T) {
	wh := workingDay("09:00", "18:00")
	existing := []models.Appointment{
		liveAppointment(10, 0, 11, 0, StatusConfirmed),
	}

	raw, err := AvailableSlots(wh, existing, monday, DefaultGranularity, DefaultSlotDuration)
	require.NoError(t, err)
	slots := slotStrings(raw)

	// 09:30 goes too: a one hour slot from 09:30 runs into the booking.
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")

	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "17:30")
	assert.Len(t, slots, 15)
}

func TestAvailableSlots_ServiceDuration(t *testing.T) {
	wh := workingDay("09:00", "18:00")
	existing := []models.Appointment{
		liveAppointment(10, 0, 11, 0, StatusPending),
	}

	// a 30 minute service fits at 09:30 where the hour default does not
	raw, err := AvailableSlots(wh, existing, monday, DefaultGranularity, 30*time.Minute)
	require.NoError(t, err)
	slots := slotStrings(raw)

	assert.Contains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
}

func TestAvailableSlots_TerminalAppointmentsFreeTheSlot(t *testing.T) {
	wh := workingDay("09:00", "18:00")
	existing := []models.Appointment{
		liveAppointment(10, 0, 11, 0, StatusCancelled),
	}

	raw, err := AvailableSlots(wh, existing, monday, DefaultGranularity, DefaultSlotDuration)
	require.NoError(t, err)
	slots := slotStrings(raw)

	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "10:30")
}

func TestAvailableSlots_ClosedDay(t *testing.T) {
	closed := workingDay("09:00", "18:00")
	closed.IsWorking = false

	slots, err := AvailableSlots(closed, nil, monday, DefaultGranularity, DefaultSlotDuration)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = AvailableSlots(nil, nil, monday, DefaultGranularity, DefaultSlotDuration)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlots_CorruptHoursRow(t *testing.T) {
	wh := workingDay("9h00", "18:00")

	_, err := AvailableSlots(wh, nil, monday, DefaultGranularity, DefaultSlotDuration)
	assert.Error(t, err)
}
