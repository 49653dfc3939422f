package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	booking "github.com/fitmarket/trainer-booking/internal/domain/booking"
	"github.com/fitmarket/trainer-booking/internal/httperr"
	"github.com/fitmarket/trainer-booking/internal/models"
)

func TestValidRating(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		assert.NoError(t, ValidRating(r))
	}

	for _, r := range []int{0, -1, 6, 100} {
		err := ValidRating(r)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidArgument), "rating %d", r)
	}
}

func TestCanCreateRequiresCompletedBooking(t *testing.T) {
	for _, status := range []booking.Status{
		booking.StatusPending,
		booking.StatusAccepted,
		booking.StatusRejected,
		booking.StatusCancelled,
	} {
		b := &models.Booking{Status: string(status)}
		err := CanCreate(b, nil)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState), "status %s", status)
	}

	b := &models.Booking{Status: string(booking.StatusCompleted)}
	assert.NoError(t, CanCreate(b, nil))
}

func TestCanCreateRejectsSecondReview(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusCompleted)}
	existing := &models.Review{ID: 1, BookingID: b.ID}

	err := CanCreate(b, existing)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}
