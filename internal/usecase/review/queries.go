package review

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/cache"
	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type ReviewQueries struct {
	repo  domain.Repository
	stats *cache.ReviewStatsCache
}

func NewReviewQueries(repo domain.Repository, stats *cache.ReviewStatsCache) *ReviewQueries {
	return &ReviewQueries{repo: repo, stats: stats}
}

func (uc *ReviewQueries) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	rv, err := uc.repo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusinessMsg(httperr.CodeNotFound, "review not found")
	}
	return rv, nil
}

func (uc *ReviewQueries) ListByService(ctx context.Context, serviceID uint) ([]models.Review, error) {
	return uc.repo.ListByService(ctx, serviceID)
}

func (uc *ReviewQueries) ListByTrainer(ctx context.Context, trainerID uint) ([]models.Review, error) {
	return uc.repo.ListByTrainer(ctx, trainerID)
}

// ServiceStats serves from the redis cache when warm, recomputing on a miss.
func (uc *ReviewQueries) ServiceStats(ctx context.Context, serviceID uint) (*domain.ServiceStats, error) {
	if cached, ok := uc.stats.Get(ctx, serviceID); ok {
		return cached, nil
	}

	stats, err := uc.repo.ServiceStats(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	uc.stats.Set(ctx, serviceID, stats)
	return stats, nil
}
