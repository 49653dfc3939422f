package review

import (
	"context"

	"github.com/fitmarket/trainer-booking/internal/models"
)

// ServiceStats aggregates all reviews reached through a service's bookings.
type ServiceStats struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	FiveStars     int64   `json:"five_stars"`
	FourStars     int64   `json:"four_stars"`
	ThreeStars    int64   `json:"three_stars"`
	TwoStars      int64   `json:"two_stars"`
	OneStar       int64   `json:"one_star"`
}

type Repository interface {
	InTx(ctx context.Context, fn func(Repository) error) error

	GetBookingWithService(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	GetReviewByBookingID(
		ctx context.Context,
		bookingID uint,
	) (*models.Review, error)

	GetReviewByID(
		ctx context.Context,
		id uint,
	) (*models.Review, error)

	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	UpdateReview(
		ctx context.Context,
		r *models.Review,
	) error

	DeleteReview(
		ctx context.Context,
		r *models.Review,
	) error

	ListByService(
		ctx context.Context,
		serviceID uint,
	) ([]models.Review, error)

	ListByTrainer(
		ctx context.Context,
		trainerID uint,
	) ([]models.Review, error)

	ServiceStats(
		ctx context.Context,
		serviceID uint,
	) (*ServiceStats, error)
}
