package review

import (
	"context"
	"errors"

	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/models"
)

var errNotFound = errors.New("record not found")

type fakeRepo struct {
	booking *models.Booking
	review  *models.Review
	stats   *domain.ServiceStats

	created         *models.Review
	createReviewErr error
	updateCalled    bool
	deleteCalled    bool
	statsCalls      int
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) GetBookingWithService(ctx context.Context, bookingID uint) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID {
		return nil, errNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) GetReviewByBookingID(ctx context.Context, bookingID uint) (*models.Review, error) {
	if f.review == nil || f.review.BookingID != bookingID {
		return nil, errNotFound
	}
	return f.review, nil
}

func (f *fakeRepo) GetReviewByID(ctx context.Context, id uint) (*models.Review, error) {
	if f.review == nil || f.review.ID != id {
		return nil, errNotFound
	}
	return f.review, nil
}

func (f *fakeRepo) CreateReview(ctx context.Context, r *models.Review) error {
	if f.createReviewErr != nil {
		return f.createReviewErr
	}
	r.ID = 1
	f.created = r
	return nil
}

func (f *fakeRepo) UpdateReview(ctx context.Context, r *models.Review) error {
	f.updateCalled = true
	f.review = r
	return nil
}

func (f *fakeRepo) DeleteReview(ctx context.Context, r *models.Review) error {
	f.deleteCalled = true
	return nil
}

func (f *fakeRepo) ListByService(ctx context.Context, serviceID uint) ([]models.Review, error) {
	return []models.Review{}, nil
}

func (f *fakeRepo) ListByTrainer(ctx context.Context, trainerID uint) ([]models.Review, error) {
	return []models.Review{}, nil
}

func (f *fakeRepo) ServiceStats(ctx context.Context, serviceID uint) (*domain.ServiceStats, error) {
	f.statsCalls++
	if f.stats == nil {
		return &domain.ServiceStats{}, nil
	}
	return f.stats, nil
}
