package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

func TestCanTransition_AllowedEdges(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusPending, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusNoShow},
	}

	for _, edge := range allowed {
		assert.NoError(t, CanTransition(edge.from, edge.to), "%s -> %s", edge.from, edge.to)
	}
}

func TestCanTransition_RejectedEdges(t *testing.T) {
	rejected := []struct{ from, to Status }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusNoShow},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusCompleted},
	}

	for _, edge := range rejected {
		err := CanTransition(edge.from, edge.to)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidStatus), "%s -> %s", edge.from, edge.to)
	}
}

func TestCanTransition_UnknownTarget(t *testing.T) {
	err := CanTransition(StatusPending, Status("done"))
	assert.True(t, httperr.IsBusiness(err, CodeInvalidStatus))
}

func TestTransition_StampsTimestamps(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusInProgress)}
	require.NoError(t, Transition(ap, StatusCompleted, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	ap = &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Transition(ap, StatusCancelled, now))
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCanClientCancel_Window(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		start time.Time
		ok    bool
	}{
		{"well before", now.Add(3 * time.Hour), true},
		{"just outside window", now.Add(2*time.Hour + time.Minute), true},
		{"exactly two hours", now.Add(2 * time.Hour), false},
		{"inside window", now.Add(90 * time.Minute), false},
		{"already started", now.Add(-time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ap := &models.Appointment{
				Status:    string(StatusConfirmed),
				StartTime: tc.start,
			}
			err := CanClientCancel(ap, now)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, CodeCancellationExpired))
			}
		})
	}
}

func TestCanClientCancel_StatusGate(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		ap := &models.Appointment{
			Status:    string(status),
			StartTime: now.Add(24 * time.Hour),
		}
		err := CanClientCancel(ap, now)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidStatus), "status %s", status)
	}
}

func TestCancel_MarksRecord(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{
		Status:    string(StatusPending),
		StartTime: now.Add(5 * time.Hour),
	}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}
