package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/timezone"
)

func TestSetAppointmentStatus_Lifecycle(t *testing.T) {
	repo := newBookingFixture()
	start := timezone.Now().Add(24 * time.Hour)
	ap := seedAppointment(repo, start, start.Add(time.Hour), domain.StatusPending)

	uc := NewSetAppointmentStatus(repo, nil)
	ctx := context.Background()

	for _, next := range []domain.Status{
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
	} {
		got, err := uc.Execute(ctx, testBarberID, 42, ap.ID, next)
		require.NoError(t, err, "to %s", next)
		assert.Equal(t, string(next), got.Status)
	}

	assert.NotNil(t, repo.appointments[ap.ID].CompletedAt)
}

func TestSetAppointmentStatus_IllegalJump(t *testing.T) {
	repo := newBookingFixture()
	start := timezone.Now().Add(24 * time.Hour)
	ap := seedAppointment(repo, start, start.Add(time.Hour), domain.StatusPending)

	uc := NewSetAppointmentStatus(repo, nil)

	_, err := uc.Execute(context.Background(), testBarberID, 42, ap.ID, domain.StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidStatus))
	assert.Equal(t, string(domain.StatusPending), repo.appointments[ap.ID].Status)
}

func TestSetAppointmentStatus_TerminalIsFinal(t *testing.T) {
	repo := newBookingFixture()
	start := timezone.Now().Add(-2 * time.Hour)
	ap := seedAppointment(repo, start, start.Add(time.Hour), domain.StatusNoShow)

	uc := NewSetAppointmentStatus(repo, nil)

	for _, next := range []domain.Status{domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted} {
		_, err := uc.Execute(context.Background(), testBarberID, 42, ap.ID, next)
		assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidStatus), "to %s", next)
	}
}

func TestSetAppointmentStatus_WrongBarber(t *testing.T) {
	repo := newBookingFixture()
	start := timezone.Now().Add(24 * time.Hour)
	ap := seedAppointment(repo, start, start.Add(time.Hour), domain.StatusPending)

	uc := NewSetAppointmentStatus(repo, nil)

	_, err := uc.Execute(context.Background(), testBarberID+1, 42, ap.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFound))
}
