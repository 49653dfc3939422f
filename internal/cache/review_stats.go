package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
)

const reviewStatsTTL = 5 * time.Minute

// ReviewStatsCache keeps the per-service review aggregates in redis.
// Every method degrades to a miss / no-op when redis is down.
type ReviewStatsCache struct {
	rdb *redis.Client
}

func NewReviewStatsCache(rdb *redis.Client) *ReviewStatsCache {
	return &ReviewStatsCache{rdb: rdb}
}

func statsKey(serviceID uint) string {
	return fmt.Sprintf("review_stats:service:%d", serviceID)
}

func (c *ReviewStatsCache) Get(ctx context.Context, serviceID uint) (*domain.ServiceStats, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, statsKey(serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var stats domain.ServiceStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *ReviewStatsCache) Set(ctx context.Context, serviceID uint, stats *domain.ServiceStats) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, statsKey(serviceID), raw, reviewStatsTTL)
}

func (c *ReviewStatsCache) Invalidate(ctx context.Context, serviceID uint) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, statsKey(serviceID))
}
