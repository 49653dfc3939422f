package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fitmarket/trainer-booking/internal/domain/review"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

func storedReview() *models.Review {
	return &models.Review{
		ID:        1,
		BookingID: 3,
		Booking:   *completedBooking(),
		Rating:    4,
		Comment:   "solid",
	}
}

func TestAddTrainerReply(t *testing.T) {
	repo := &fakeRepo{review: storedReview()}
	uc := NewAddTrainerReply(repo, noCache(), nil)

	rv, err := uc.Execute(context.Background(), 1, 10, "thanks for coming")

	require.NoError(t, err)
	assert.True(t, repo.updateCalled)
	require.NotNil(t, rv.TrainerReply)
	assert.Equal(t, "thanks for coming", *rv.TrainerReply)
}

func TestAddTrainerReplyOverwrites(t *testing.T) {
	rv := storedReview()
	first := "first answer"
	rv.TrainerReply = &first

	repo := &fakeRepo{review: rv}
	uc := NewAddTrainerReply(repo, noCache(), nil)

	out, err := uc.Execute(context.Background(), 1, 10, "second answer")

	require.NoError(t, err)
	assert.Equal(t, "second answer", *out.TrainerReply)
}

func TestAddTrainerReplyNotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewAddTrainerReply(repo, noCache(), nil)

	_, err := uc.Execute(context.Background(), 1, 10, "hello")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestManageReviewUpdate(t *testing.T) {
	repo := &fakeRepo{review: storedReview()}
	uc := NewManageReview(repo, noCache(), nil)

	rv, err := uc.Update(context.Background(), UpdateReviewInput{
		ReviewID: 1,
		CallerID: 20,
		Rating:   2,
		Comment:  "changed my mind",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, rv.Rating)
	assert.Equal(t, "changed my mind", rv.Comment)
	assert.True(t, repo.updateCalled)
}

func TestManageReviewUpdateInvalidRating(t *testing.T) {
	repo := &fakeRepo{review: storedReview()}
	uc := NewManageReview(repo, noCache(), nil)

	_, err := uc.Update(context.Background(), UpdateReviewInput{
		ReviewID: 1,
		CallerID: 20,
		Rating:   9,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument))
	assert.False(t, repo.updateCalled)
}

func TestManageReviewDelete(t *testing.T) {
	repo := &fakeRepo{review: storedReview()}
	uc := NewManageReview(repo, noCache(), nil)

	require.NoError(t, uc.Delete(context.Background(), 1, 20))
	assert.True(t, repo.deleteCalled)

	repo = &fakeRepo{}
	uc = NewManageReview(repo, noCache(), nil)

	err := uc.Delete(context.Background(), 1, 20)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestServiceStatsFallsBackToRepo(t *testing.T) {
	repo := &fakeRepo{stats: &domain.ServiceStats{
		TotalReviews:  3,
		AverageRating: 4.3,
		FiveStars:     2,
		ThreeStars:    1,
	}}
	uc := NewReviewQueries(repo, noCache())

	stats, err := uc.ServiceStats(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalReviews)
	assert.Equal(t, 1, repo.statsCalls)
}
