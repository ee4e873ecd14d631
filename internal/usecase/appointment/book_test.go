package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

const (
	testBarberID  = uint(1)
	testClientID  = uint(7)
	testServiceID = uint(3)
)

// nextMonday returns a Monday at least a week in the future, so slots on
// it are never rejected as past.
func nextMonday() time.Time {
	d := timezone.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func newBookingFixture() *fakeRepo {
	repo := newFakeRepo()
	repo.barbers[testBarberID] = &models.Barber{
		ID:          testBarberID,
		Name:        "Marcos",
		IsAvailable: true,
	}
	repo.services[testServiceID] = &models.Service{
		ID:          testServiceID,
		BarberID:    testBarberID,
		Name:        "Corte + Barba",
		DurationMin: 45,
		Price:       80,
		Active:      true,
	}
	repo.hours[time.Monday] = &models.WorkingHours{
		BarberID:  testBarberID,
		Weekday:   int(time.Monday),
		StartTime: "09:00",
		EndTime:   "18:00",
		IsWorking: true,
	}
	return repo
}

func bookInput(date time.Time, hhmm string) BookAppointmentInput {
	return BookAppointmentInput{
		ClientID:  testClientID,
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		Date:      date.Format("2006-01-02"),
		Time:      hhmm,
	}
}

func TestBookAppointment_Success(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)
	day := nextMonday()

	ap, err := uc.Execute(context.Background(), bookInput(day, "10:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, testClientID, ap.ClientID)
	assert.Equal(t, 80.0, ap.TotalPrice)
	assert.Equal(t, 45*time.Minute, ap.EndTime.Sub(ap.StartTime))
	assert.Contains(t, repo.appointments, ap.ID)
}

func TestBookAppointment_SlotTaken(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)
	day := nextMonday()

	_, err := uc.Execute(context.Background(), bookInput(day, "10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), bookInput(day, "10:30"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeSlotTaken))

	// a 45 minute service frees the slot at 10:45
	_, err = uc.Execute(context.Background(), bookInput(day, "10:45"))
	assert.NoError(t, err)
}

// Two concurrent requests for overlapping but distinct slots on an empty
// day: both pass the advisory read, only one may survive the serialized
// recheck-and-insert.
func TestBookAppointment_ConcurrentOverlap(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)
	day := nextMonday()

	inputs := []BookAppointmentInput{
		bookInput(day, "10:00"),
		bookInput(day, "10:30"),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(inputs))
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), inputs[i])
		}(i)
	}
	wg.Wait()

	var booked, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			booked++
		case httperr.IsBusiness(err, domain.CodeSlotTaken):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, booked)
	assert.Equal(t, 1, rejected)
	assert.Len(t, repo.appointments, 1)
}

func TestBookAppointment_NotWorkingDay(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)

	sunday := nextMonday().AddDate(0, 0, 6)
	_, err := uc.Execute(context.Background(), bookInput(sunday, "10:00"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotWorkingDay))
}

func TestBookAppointment_OutsideWorkingHours(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)
	day := nextMonday()

	_, err := uc.Execute(context.Background(), bookInput(day, "08:00"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeOutsideWorkingHours))

	// 45 minute service starting 17:30 runs past closing
	_, err = uc.Execute(context.Background(), bookInput(day, "17:30"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeOutsideWorkingHours))
}

func TestBookAppointment_PastRejected(t *testing.T) {
	repo := newBookingFixture()
	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  testClientID,
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		Date:      "2020-06-01",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeAppointmentInThePast))
}

func TestBookAppointment_BarberUnavailable(t *testing.T) {
	repo := newBookingFixture()
	repo.barbers[testBarberID].IsAvailable = false
	uc := NewBookAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), bookInput(nextMonday(), "10:00"))
	assert.True(t, httperr.IsBusiness(err, domain.CodeBarberUnavailable))
}
