package review

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/audit"
	"github.com/fitmarket/trainer-booking/internal/cache"
	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type AddTrainerReply struct {
	repo  domain.Repository
	stats *cache.ReviewStatsCache
	audit *audit.Dispatcher
}

func NewAddTrainerReply(
	repo domain.Repository,
	stats *cache.ReviewStatsCache,
	auditDispatcher *audit.Dispatcher,
) *AddTrainerReply {
	return &AddTrainerReply{
		repo:  repo,
		stats: stats,
		audit: auditDispatcher,
	}
}

// Execute upserts the reply text; calling it again overwrites the previous
// reply. Authorization is the route's trainer-role guard.
func (uc *AddTrainerReply) Execute(
	ctx context.Context,
	reviewID uint,
	trainerID uint,
	reply string,
) (*models.Review, error) {

	rv, err := uc.repo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}

	rv.TrainerReply = &reply
	if err := uc.repo.UpdateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.stats.Invalidate(ctx, rv.Booking.ServiceID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &trainerID,
		Action:   "review_replied",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
