package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReviewGormRepository{db: tx})
	})
}

func (r *ReviewGormRepository) GetBookingWithService(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ReviewGormRepository) GetReviewByBookingID(
	ctx context.Context,
	bookingID uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) GetReviewByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Service").
		Preload("Booking.Client").
		First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	err := r.db.WithContext(ctx).Create(rv).Error

	// Concurrent creates can both pass the pre-insert read; the unique index
	// on booking_id decides the race, and the loser is still a conflict.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusinessMsg(httperr.CodeConflict, "booking already has a review")
	}
	return err
}

func (r *ReviewGormRepository) UpdateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewGormRepository) DeleteReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Delete(rv).Error
}

func (r *ReviewGormRepository) ListByService(
	ctx context.Context,
	serviceID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Client").
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.service_id = ?", serviceID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ListByTrainer(
	ctx context.Context,
	trainerID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Client").
		Preload("Booking.Service").
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("services.trainer_id = ?", trainerID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) ServiceStats(
	ctx context.Context,
	serviceID uint,
) (*domain.ServiceStats, error) {

	var stats domain.ServiceStats
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select(`
			COUNT(*) AS total_reviews,
			COALESCE(AVG(CAST(reviews.rating AS FLOAT)), 0) AS average_rating,
			COUNT(*) FILTER (WHERE reviews.rating = 5) AS five_stars,
			COUNT(*) FILTER (WHERE reviews.rating = 4) AS four_stars,
			COUNT(*) FILTER (WHERE reviews.rating = 3) AS three_stars,
			COUNT(*) FILTER (WHERE reviews.rating = 2) AS two_stars,
			COUNT(*) FILTER (WHERE reviews.rating = 1) AS one_star
		`).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.service_id = ?", serviceID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
