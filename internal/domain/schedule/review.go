package schedule

import (
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// CanReview gates review creation: only completed appointments, one review
// each.
func CanReview(ap *models.Appointment, hasReview bool) error {
	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness(CodeReviewNotAllowed)
	}
	if hasReview {
		return httperr.ErrBusiness(CodeReviewNotAllowed)
	}
	return nil
}

// ValidateRating requires an integer rating in [1,5].
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness(CodeInvalidRating)
	}
	return nil
}
