package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/models"
)

func seedAppointment(repo *fakeRepo, start, end time.Time, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:        uuid.New(),
		ClientID:  testClientID,
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		StartTime: start,
		EndTime:   end,
		Status:    string(status),
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestGetAvailability_DefaultDuration(t *testing.T) {
	repo := newBookingFixture()
	day := nextMonday()

	seedAppointment(repo, day.Add(10*time.Hour), day.Add(11*time.Hour), domain.StatusConfirmed)

	uc := NewGetAvailability(repo)
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: testBarberID,
		Date:     day,
	})
	require.NoError(t, err)

	assert.Contains(t, slots, "09:00")
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "17:30")
}

func TestGetAvailability_ServiceDuration(t *testing.T) {
	repo := newBookingFixture()
	day := nextMonday()

	seedAppointment(repo, day.Add(10*time.Hour), day.Add(11*time.Hour), domain.StatusPending)

	uc := NewGetAvailability(repo)

	// 45 minute service: 09:00 fits, 09:30 would run into the booking
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID:  testBarberID,
		Date:      day,
		ServiceID: testServiceID,
	})
	require.NoError(t, err)

	assert.Contains(t, slots, "09:00")
	assert.NotContains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := newBookingFixture()
	uc := NewGetAvailability(repo)

	sunday := nextMonday().AddDate(0, 0, 6)
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: testBarberID,
		Date:     sunday,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
