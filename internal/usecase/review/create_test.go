package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitmarket/trainer-booking/internal/cache"
	booking "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

func noCache() *cache.ReviewStatsCache {
	return cache.NewReviewStatsCache(nil)
}

func completedBooking() *models.Booking {
	return &models.Booking{
		ID:        3,
		ServiceID: 7,
		ClientID:  20,
		Service:   models.Service{ID: 7, TrainerID: 10},
		Status:    string(booking.StatusCompleted),
	}
}

func TestCreateReview(t *testing.T) {
	repo := &fakeRepo{booking: completedBooking()}
	uc := NewCreateReview(repo, noCache(), nil)

	rv, err := uc.Execute(context.Background(), CreateReviewInput{
		BookingID: 3,
		AuthorID:  20,
		Rating:    5,
		Comment:   "great session",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, uint(3), rv.BookingID)
	assert.Equal(t, 5, rv.Rating)
	assert.Equal(t, "great session", rv.Comment)
	assert.Nil(t, rv.TrainerReply)
}

func TestCreateReviewInvalidRating(t *testing.T) {
	repo := &fakeRepo{booking: completedBooking()}
	uc := NewCreateReview(repo, noCache(), nil)

	for _, rating := range []int{0, 6} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			BookingID: 3,
			AuthorID:  20,
			Rating:    rating,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument), "rating %d", rating)
	}
	assert.Nil(t, repo.created)
}

func TestCreateReviewBookingNotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateReview(repo, noCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		BookingID: 3,
		AuthorID:  20,
		Rating:    4,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestCreateReviewRequiresCompletion(t *testing.T) {
	for _, status := range []booking.Status{
		booking.StatusPending,
		booking.StatusAccepted,
		booking.StatusRejected,
		booking.StatusCancelled,
	} {
		b := completedBooking()
		b.Status = string(status)

		repo := &fakeRepo{booking: b}
		uc := NewCreateReview(repo, noCache(), nil)

		_, err := uc.Execute(context.Background(), CreateReviewInput{
			BookingID: 3,
			AuthorID:  20,
			Rating:    4,
		})

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState), "status %s", status)
		assert.Nil(t, repo.created)
	}
}

func TestCreateReviewInsertRaceSurfacesConflict(t *testing.T) {
	// A concurrent writer can slip between the pre-insert read and the
	// insert; the repository reports the lost race as a conflict and the
	// use case must pass it through untouched.
	repo := &fakeRepo{
		booking:         completedBooking(),
		createReviewErr: httperr.ErrBusinessMsg(httperr.CodeConflict, "booking already has a review"),
	}
	uc := NewCreateReview(repo, noCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		BookingID: 3,
		AuthorID:  20,
		Rating:    5,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

func TestCreateReviewDuplicate(t *testing.T) {
	repo := &fakeRepo{
		booking: completedBooking(),
		review:  &models.Review{ID: 1, BookingID: 3, Rating: 4},
	}
	uc := NewCreateReview(repo, noCache(), nil)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		BookingID: 3,
		AuthorID:  20,
		Rating:    5,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	assert.Nil(t, repo.created)
}
