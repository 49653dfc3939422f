package review

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/audit"
	"github.com/fitmarket/trainer-booking/internal/cache"
	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type UpdateReviewInput struct {
	ReviewID uint
	CallerID uint
	Rating   int
	Comment  string
}

// ManageReview covers update and delete of an existing review. Both are
// open to any authenticated caller.
type ManageReview struct {
	repo  domain.Repository
	stats *cache.ReviewStatsCache
	audit *audit.Dispatcher
}

func NewManageReview(
	repo domain.Repository,
	stats *cache.ReviewStatsCache,
	auditDispatcher *audit.Dispatcher,
) *ManageReview {
	return &ManageReview{
		repo:  repo,
		stats: stats,
		audit: auditDispatcher,
	}
}

func (uc *ManageReview) Update(
	ctx context.Context,
	in UpdateReviewInput,
) (*models.Review, error) {

	if err := domain.ValidRating(in.Rating); err != nil {
		return nil, err
	}

	rv, err := uc.repo.GetReviewByID(ctx, in.ReviewID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}

	rv.Rating = in.Rating
	rv.Comment = in.Comment
	if err := uc.repo.UpdateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.stats.Invalidate(ctx, rv.Booking.ServiceID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerID,
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}

func (uc *ManageReview) Delete(
	ctx context.Context,
	reviewID uint,
	callerID uint,
) error {

	rv, err := uc.repo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}

	if err := uc.repo.DeleteReview(ctx, rv); err != nil {
		return err
	}

	uc.stats.Invalidate(ctx, rv.Booking.ServiceID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &reviewID,
	})

	return nil
}
