package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

func TestCanReview(t *testing.T) {
	completed := &models.Appointment{Status: string(StatusCompleted)}

	assert.NoError(t, CanReview(completed, false))

	err := CanReview(completed, true)
	assert.True(t, httperr.IsBusiness(err, CodeReviewNotAllowed), "second review must be rejected")

	for _, status := range []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow} {
		ap := &models.Appointment{Status: string(status)}
		err := CanReview(ap, false)
		assert.True(t, httperr.IsBusiness(err, CodeReviewNotAllowed), "status %s", status)
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, ValidateRating(rating))
	}
	for _, rating := range []int{0, -1, 6, 100} {
		err := ValidateRating(rating)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidRating), "rating %d", rating)
	}
}
