package review

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/audit"
	"github.com/fitmarket/trainer-booking/internal/cache"
	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/metrics"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type CreateReviewInput struct {
	BookingID uint
	AuthorID  uint
	Rating    int
	Comment   string
}

type CreateReview struct {
	repo  domain.Repository
	stats *cache.ReviewStatsCache
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	stats *cache.ReviewStatsCache,
	auditDispatcher *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		stats: stats,
		audit: auditDispatcher,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if err := domain.ValidRating(in.Rating); err != nil {
		return nil, err
	}

	rv := &models.Review{
		BookingID: in.BookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}

	var serviceID uint

	// Completed-status and one-per-booking reads commit with the insert.
	err := uc.repo.InTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingWithService(ctx, in.BookingID)
		if err != nil {
			return httperr.ErrBusinessMsg(httperr.CodeNotFound, "booking not found")
		}
		serviceID = b.ServiceID

		existing, err := tx.GetReviewByBookingID(ctx, in.BookingID)
		if err != nil {
			existing = nil
		}

		if err := domain.CanCreate(b, existing); err != nil {
			return err
		}

		return tx.CreateReview(ctx, rv)
	})
	if err != nil {
		return nil, err
	}

	uc.stats.Invalidate(ctx, serviceID)
	metrics.ReviewsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AuthorID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
