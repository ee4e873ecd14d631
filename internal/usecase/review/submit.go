package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/metrics"
	"github.com/barberbook/barbershop-api/internal/models"
)

type SubmitReviewInput struct {
	ClientID      uint
	UserID        uint
	AppointmentID uuid.UUID
	Rating        int
	Comment       string
}

type SubmitReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitReview {
	return &SubmitReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForClient(ctx, in.AppointmentID, in.ClientID)
	if err != nil {
		return nil, err
	}

	hasReview, err := uc.repo.HasReview(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReview(ap, hasReview); err != nil {
		return nil, err
	}

	rv := &models.Review{
		AppointmentID: ap.ID,
		ClientID:      ap.ClientID,
		BarberID:      ap.BarberID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	metrics.ReviewsTotal.Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionReviewSubmitted,
		Entity:   "review",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{"rating": in.Rating},
	})

	return rv, nil
}
